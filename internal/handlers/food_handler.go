package handlers

import (
	"net/http"
	"strings"

	"github.com/example/diet-planner/internal/catalog"
	"github.com/example/diet-planner/internal/models"
	"github.com/example/diet-planner/internal/suitability"
	"github.com/gin-gonic/gin"
)

// FoodHandler handles catalog browsing and per-food suitability scoring.
type FoodHandler struct {
	catalog *catalog.Catalog
	scorer  suitability.Scorer
}

// NewFoodHandler creates a new FoodHandler. scorer may be nil when the model
// artifact is unavailable.
func NewFoodHandler(cat *catalog.Catalog, scorer suitability.Scorer) *FoodHandler {
	return &FoodHandler{catalog: cat, scorer: scorer}
}

// List returns catalog foods, optionally filtered by diet tags (AND
// semantics) and categories (comma-separated query params).
// @Summary List catalog foods
// @Tags foods
// @Produce json
// @Param tags query string false "Comma-separated diet tags"
// @Param categories query string false "Comma-separated categories"
// @Success 200 {array} models.FoodRecord
// @Router /foods [get]
func (h *FoodHandler) List(c *gin.Context) {
	tags, err := parseDietTags(splitCSV(c.Query("tags")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var categories []models.FoodCategory
	for _, raw := range splitCSV(c.Query("categories")) {
		category := models.FoodCategory(raw)
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + raw})
			return
		}
		categories = append(categories, category)
	}

	foods := h.catalog.Filter(tags, categories)
	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

// ScoreRequest is an ad-hoc food payload for suitability scoring.
type ScoreRequest struct {
	Name      string                 `json:"name" binding:"required"`
	Category  models.FoodCategory    `json:"category" binding:"required"`
	Per100g   models.NutrientProfile `json:"per_100g" binding:"required"`
	Tags      []models.DietTag       `json:"tags"`
	CostLevel models.CostLevel       `json:"cost_level"`
}

// Score rates a single food's fit on the 1-5 suitability scale.
// @Summary Score a food's diet suitability
// @Tags foods
// @Accept json
// @Produce json
// @Param request body ScoreRequest true "Food payload"
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]string
// @Router /foods/score [post]
func (h *FoodHandler) Score(c *gin.Context) {
	if h.scorer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suitability model unavailable"})
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CostLevel == "" {
		req.CostLevel = models.CostMedium
	}

	food := models.FoodRecord{
		Name:      req.Name,
		Category:  req.Category,
		Per100g:   req.Per100g,
		Tags:      req.Tags,
		CostLevel: req.CostLevel,
	}
	if err := food.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food.Normalize()

	label, confidence := h.scorer.Score(&food)
	c.JSON(http.StatusOK, gin.H{
		"name":                   food.Name,
		"diet_suitability_score": label,
		"confidence":             confidence,
	})
}

// DietOption describes one supported diet tag.
type DietOption struct {
	Value       string   `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

var dietOptions = []DietOption{
	{
		Value:       "veg",
		Label:       "Vegetarian",
		Description: "No meat, fish, or poultry",
		Examples:    []string{"tofu", "lentils", "chickpeas", "eggs", "dairy"},
	},
	{
		Value:       "non_veg",
		Label:       "Non-Vegetarian",
		Description: "Includes meat, fish, and poultry",
		Examples:    []string{"chicken", "beef", "fish", "turkey", "eggs"},
	},
	{
		Value:       "vegan",
		Label:       "Vegan",
		Description: "No animal products",
		Examples:    []string{"tofu", "lentils", "chickpeas", "nuts", "seeds"},
	},
	{
		Value:       "halal",
		Label:       "Halal",
		Description: "Halal dietary requirements",
		Examples:    []string{"halal meat", "fish", "dairy", "grains"},
	},
	{
		Value:       "lactose_free",
		Label:       "Lactose Free",
		Description: "No dairy products",
		Examples:    []string{"almond milk", "coconut yogurt", "dairy-free cheese"},
	},
	{
		Value:       "budget",
		Label:       "Budget Friendly",
		Description: "Cost-effective food choices",
		Examples:    []string{"lentils", "rice", "beans", "frozen vegetables"},
	},
}

// DietOptions returns the supported diet tags with descriptions.
// @Summary List supported diet options
// @Tags foods
// @Produce json
// @Success 200 {object} map[string][]DietOption
// @Router /diet-options [get]
func (h *FoodHandler) DietOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diet_options": dietOptions})
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
