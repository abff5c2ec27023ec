package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/example/diet-planner/internal/engine"
	"github.com/example/diet-planner/internal/models"
	"github.com/gin-gonic/gin"
)

// Meal plan request bounds, matching the public contract.
const (
	minPlanCalories = 800
	maxPlanCalories = 6000
	minPlanProtein  = 50
	maxPlanProtein  = 400
	minPlanFat      = 20
	maxPlanFat      = 200
	minPlanCarbs    = 50
	maxPlanCarbs    = 800
	defaultPlanDays = 7
)

// PlanHandler handles meal plan generation.
type PlanHandler struct {
	engine *engine.EngineContext
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(eng *engine.EngineContext) *PlanHandler {
	return &PlanHandler{engine: eng}
}

// PlanRequest contains the daily nutrition targets and plan constraints.
type PlanRequest struct {
	Calories float64  `json:"calories" binding:"required"`
	ProteinG float64  `json:"protein_g" binding:"required"`
	FatG     float64  `json:"fat_g" binding:"required"`
	CarbsG   float64  `json:"carbs_g" binding:"required"`
	DietTags []string `json:"diet_tags"`
	// Days is a pointer so an explicit 0 is rejected rather than defaulted.
	Days *int `json:"days"`
}

// FoodItem is one portion in the response, with its nutrient contribution.
type FoodItem struct {
	Name     string  `json:"name"`
	AmountG  float64 `json:"amount_g"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// MealJSON is one meal slot in the response.
type MealJSON struct {
	Name   string             `json:"name"`
	Foods  []FoodItem         `json:"foods"`
	Totals map[string]float64 `json:"totals"`
}

// DayJSON is one day in the response.
type DayJSON struct {
	Day         int                `json:"day"`
	Meals       []MealJSON         `json:"meals"`
	DailyTotals map[string]float64 `json:"daily_totals"`
}

// PlanTotals holds the whole-plan roll-up.
type PlanTotals struct {
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Fat              float64 `json:"fat"`
	Carbs            float64 `json:"carbs"`
	AvgDailyCalories float64 `json:"avg_daily_calories"`
}

// PlanResponse is the meal plan response body.
type PlanResponse struct {
	Days           []DayJSON  `json:"days"`
	PlanTotals     PlanTotals `json:"plan_totals"`
	AdherenceScore float64    `json:"adherence_score"`
}

// Generate builds a multi-day meal plan for the requested targets.
// @Summary Generate a meal plan
// @Tags mealplan
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Daily targets and constraints"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /mealplan [post]
func (h *PlanHandler) Generate(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	days := defaultPlanDays
	if req.Days != nil {
		days = *req.Days
	}

	if err := validatePlanRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags, err := parseDietTags(req.DietTags)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := models.TargetProfile{
		TargetCalories: req.Calories,
		ProteinG:       req.ProteinG,
		FatG:           req.FatG,
		CarbsG:         req.CarbsG,
	}

	plan, err := engine.Allocate(h.engine, target, days, tags)
	if err != nil {
		var noFoods *engine.NoFeasibleFoodsError
		if errors.As(err, &noFoods) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, renderPlan(plan))
}

func validatePlanRequest(req *PlanRequest) error {
	checks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"calories", req.Calories, minPlanCalories, maxPlanCalories},
		{"protein_g", req.ProteinG, minPlanProtein, maxPlanProtein},
		{"fat_g", req.FatG, minPlanFat, maxPlanFat},
		{"carbs_g", req.CarbsG, minPlanCarbs, maxPlanCarbs},
	}
	for _, check := range checks {
		if check.value < check.min || check.value > check.max {
			return &engine.ValidationError{
				Field:   check.field,
				Value:   fmt.Sprintf("%g", check.value),
				Allowed: fmt.Sprintf("%g to %g", check.min, check.max),
			}
		}
	}
	return nil
}

func parseDietTags(raw []string) ([]models.DietTag, error) {
	tags := make([]models.DietTag, 0, len(raw))
	for _, r := range raw {
		tag := models.DietTag(r)
		if !tag.Valid() {
			return nil, &engine.ValidationError{
				Field:   "diet_tags",
				Value:   r,
				Allowed: "veg, non_veg, vegan, halal, lactose_free, budget",
			}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func renderPlan(plan *models.MealPlan) PlanResponse {
	resp := PlanResponse{
		Days:           make([]DayJSON, 0, len(plan.Days)),
		AdherenceScore: round1(plan.AdherenceScore),
	}

	for _, day := range plan.Days {
		dayJSON := DayJSON{
			Day:         day.Day,
			Meals:       make([]MealJSON, 0, len(day.Meals)),
			DailyTotals: totalsMap(day.DailyTotals()),
		}
		for _, meal := range day.Meals {
			mealJSON := MealJSON{
				Name:   string(meal.Name),
				Foods:  make([]FoodItem, 0, len(meal.Portions)),
				Totals: totalsMap(meal.Totals()),
			}
			for _, portion := range meal.Portions {
				contribution := portion.Contribution()
				mealJSON.Foods = append(mealJSON.Foods, FoodItem{
					Name:     portion.Food.Name,
					AmountG:  round1(portion.AmountG),
					Calories: round1(contribution.Calories),
					Protein:  round1(contribution.Protein),
					Fat:      round1(contribution.Fat),
					Carbs:    round1(contribution.Carbs),
				})
			}
			dayJSON.Meals = append(dayJSON.Meals, mealJSON)
		}
		resp.Days = append(resp.Days, dayJSON)
	}

	totals := plan.PlanTotals()
	resp.PlanTotals = PlanTotals{
		Calories:         round1(totals.Calories),
		Protein:          round1(totals.Protein),
		Fat:              round1(totals.Fat),
		Carbs:            round1(totals.Carbs),
		AvgDailyCalories: round1(plan.AvgDailyCalories()),
	}
	return resp
}

func totalsMap(p models.NutrientProfile) map[string]float64 {
	return map[string]float64{
		"calories": round1(p.Calories),
		"protein":  round1(p.Protein),
		"fat":      round1(p.Fat),
		"carbs":    round1(p.Carbs),
	}
}
