package suitability

import "github.com/example/diet-planner/internal/models"

// FeatureCount is the length of the engineered feature vector the model was
// trained on. The order below is part of the model contract and must match
// the training pipeline.
const FeatureCount = 17

// costEncoding maps cost level to its ordinal feature value.
var costEncoding = map[models.CostLevel]float64{
	models.CostLow:    1,
	models.CostMedium: 2,
	models.CostHigh:   3,
}

// NutritionalScore is the composite score used both as a model feature and
// as the basis of the training labels: weighted protein content, leanness,
// calorie moderation and carb content, normalized to roughly [0,1].
func NutritionalScore(p models.NutrientProfile) float64 {
	return (p.Protein*0.4 + (100-p.Fat)*0.2 + (100-p.Calories/10)*0.3 + p.Carbs*0.1) / 100
}

// Features builds the engineered feature vector for a food record: raw
// per-100g macros, protein density, macro calorie percentages, calorie
// density, the composite nutritional score, encoded cost level and the
// dietary-tag booleans.
func Features(food *models.FoodRecord) []float64 {
	n := food.Per100g

	var proteinDensity, fatPct, carbPct, proteinPct float64
	if n.Calories > 0 {
		proteinDensity = n.Protein / n.Calories
		fatPct = n.Fat * 9 / n.Calories
		carbPct = n.Carbs * 4 / n.Calories
		proteinPct = n.Protein * 4 / n.Calories
	}

	cost, ok := costEncoding[food.CostLevel]
	if !ok {
		cost = costEncoding[models.CostMedium]
	}

	return []float64{
		n.Calories,
		n.Protein,
		n.Fat,
		n.Carbs,
		proteinDensity,
		fatPct,
		carbPct,
		proteinPct,
		n.Calories / 100,
		NutritionalScore(n),
		cost,
		boolFeature(food.HasTag(models.TagVeg)),
		boolFeature(food.HasTag(models.TagVegan)),
		boolFeature(food.HasTag(models.TagNonVeg)),
		boolFeature(food.HasTag(models.TagHalal)),
		boolFeature(food.HasTag(models.TagBudget)),
		boolFeature(food.HasTag(models.TagLactoseFree)),
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
