package handlers

import (
	"math"
	"net/http"

	"github.com/example/diet-planner/internal/engine"
	"github.com/gin-gonic/gin"
)

// TargetHandler handles energy/macro target computation.
type TargetHandler struct{}

// NewTargetHandler creates a new TargetHandler.
func NewTargetHandler() *TargetHandler {
	return &TargetHandler{}
}

// TargetRequest contains the biometric and goal inputs.
type TargetRequest struct {
	Sex           string  `json:"sex" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal" binding:"required"`
}

// MacroTargets is the macro-gram portion of the target response.
type MacroTargets struct {
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
}

// TargetResponse is the target computation response body.
type TargetResponse struct {
	TDEE           float64      `json:"tdee"`
	TargetCalories float64      `json:"target_calories"`
	MacroTargets   MacroTargets `json:"macro_targets"`
	BMR            float64      `json:"bmr"`
	ActivityFactor float64      `json:"activity_factor"`
}

// Compute derives BMR, TDEE and macro targets from biometric inputs.
// @Summary Compute energy and macro targets
// @Tags targets
// @Accept json
// @Produce json
// @Param request body TargetRequest true "Biometric inputs"
// @Success 200 {object} TargetResponse
// @Failure 400 {object} map[string]string
// @Router /targets [post]
func (h *TargetHandler) Compute(c *gin.Context) {
	var req TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := engine.ComputeTargets(engine.TargetInput{
		Sex:           req.Sex,
		Age:           req.Age,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TargetResponse{
		TDEE:           round1(result.TDEE),
		TargetCalories: round1(result.TargetCalories),
		MacroTargets: MacroTargets{
			ProteinG: round1(result.ProteinG),
			FatG:     round1(result.FatG),
			CarbsG:   round1(result.CarbsG),
		},
		BMR:            round1(result.BMR),
		ActivityFactor: result.ActivityFactor,
	})
}

// round1 rounds to one decimal place, matching the wire contract.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
