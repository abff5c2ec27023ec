package models

import (
	"fmt"
	"time"
)

// FoodCategory classifies a food record into one of the closed set of
// catalog categories used for meal composition.
type FoodCategory string

const (
	CategoryProtein      FoodCategory = "protein"
	CategoryCarbohydrate FoodCategory = "carbohydrate"
	CategoryVegetable    FoodCategory = "vegetable"
	CategoryFruit        FoodCategory = "fruit"
	CategoryFat          FoodCategory = "fat"
	CategoryCompleteMeal FoodCategory = "complete_meal"
	CategorySnack        FoodCategory = "snack"
	CategoryBeverage     FoodCategory = "beverage"
)

// Categories lists every valid food category.
var Categories = []FoodCategory{
	CategoryProtein,
	CategoryCarbohydrate,
	CategoryVegetable,
	CategoryFruit,
	CategoryFat,
	CategoryCompleteMeal,
	CategorySnack,
	CategoryBeverage,
}

// Valid reports whether c is a member of the closed category set.
func (c FoodCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DietTag is a dietary restriction or preference tag on a food record.
type DietTag string

const (
	TagVeg         DietTag = "veg"
	TagVegan       DietTag = "vegan"
	TagNonVeg      DietTag = "non_veg"
	TagHalal       DietTag = "halal"
	TagLactoseFree DietTag = "lactose_free"
	TagBudget      DietTag = "budget"
)

// DietTags lists every recognized diet tag.
var DietTags = []DietTag{TagVeg, TagVegan, TagNonVeg, TagHalal, TagLactoseFree, TagBudget}

// Valid reports whether t is a recognized diet tag.
func (t DietTag) Valid() bool {
	for _, known := range DietTags {
		if t == known {
			return true
		}
	}
	return false
}

// CostLevel is the relative price band of a food record. It is a cosmetic
// attribute except that low/medium cost qualifies a food for the budget tag.
type CostLevel string

const (
	CostLow    CostLevel = "low"
	CostMedium CostLevel = "medium"
	CostHigh   CostLevel = "high"
)

// NutrientProfile holds calories and macro grams. Values are per 100g when
// attached to a FoodRecord, absolute when produced by Scale/Add.
type NutrientProfile struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Scale returns the profile multiplied by factor k.
func (p NutrientProfile) Scale(k float64) NutrientProfile {
	return NutrientProfile{
		Calories: p.Calories * k,
		Protein:  p.Protein * k,
		Fat:      p.Fat * k,
		Carbs:    p.Carbs * k,
	}
}

// Add returns the pairwise sum of two profiles.
func (p NutrientProfile) Add(q NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories: p.Calories + q.Calories,
		Protein:  p.Protein + q.Protein,
		Fat:      p.Fat + q.Fat,
		Carbs:    p.Carbs + q.Carbs,
	}
}

// FoodRecord is a catalog entry with nutrition per 100g. Records are loaded
// once at startup and immutable afterwards; everything that consumes them
// holds shared references into the catalog snapshot.
type FoodRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name      string          `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Category  FoodCategory    `gorm:"size:32;not null;index" json:"category"`
	Per100g   NutrientProfile `gorm:"embedded;embeddedPrefix:per100g_" json:"per_100g"`
	FiberG    float64         `json:"fiber_g"`
	Tags      []DietTag       `gorm:"serializer:json" json:"tags"`
	CostLevel CostLevel       `gorm:"size:16;not null" json:"cost_level"`
}

// TableName returns the table name for FoodRecord.
func (FoodRecord) TableName() string {
	return "foods"
}

// HasTag reports whether the record carries the given diet tag.
func (f *FoodRecord) HasTag(tag DietTag) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CaloriesPerGram returns the calorie density of the food.
func (f *FoodRecord) CaloriesPerGram() float64 {
	return f.Per100g.Calories / 100
}

// Validate checks the load-time invariants: non-empty name, closed category
// and tag enums, non-negative nutrients. Name uniqueness is enforced by the
// store's unique index.
func (f *FoodRecord) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("food record has empty name")
	}
	if !f.Category.Valid() {
		return fmt.Errorf("food %q: unknown category %q", f.Name, f.Category)
	}
	if f.Per100g.Calories < 0 || f.Per100g.Protein < 0 || f.Per100g.Fat < 0 || f.Per100g.Carbs < 0 || f.FiberG < 0 {
		return fmt.Errorf("food %q: negative nutrient value", f.Name)
	}
	for _, t := range f.Tags {
		if !t.Valid() {
			return fmt.Errorf("food %q: unknown tag %q", f.Name, t)
		}
	}
	switch f.CostLevel {
	case CostLow, CostMedium, CostHigh:
	default:
		return fmt.Errorf("food %q: unknown cost level %q", f.Name, f.CostLevel)
	}
	return nil
}

// Normalize applies the load-time tag rules: vegan implies veg, and
// low/medium cost implies budget.
func (f *FoodRecord) Normalize() {
	if f.HasTag(TagVegan) && !f.HasTag(TagVeg) {
		f.Tags = append(f.Tags, TagVeg)
	}
	if (f.CostLevel == CostLow || f.CostLevel == CostMedium) && !f.HasTag(TagBudget) {
		f.Tags = append(f.Tags, TagBudget)
	}
}
