package models

// MealSlotName identifies one of the four fixed meal slots in a day.
type MealSlotName string

const (
	SlotBreakfast MealSlotName = "breakfast"
	SlotLunch     MealSlotName = "lunch"
	SlotDinner    MealSlotName = "dinner"
	SlotSnack     MealSlotName = "snack"
)

// SlotOrder is the fixed slot ordering within a day.
var SlotOrder = []MealSlotName{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// TargetProfile is the daily nutrition target a plan is built against.
// It is immutable for the duration of a planning request.
type TargetProfile struct {
	TargetCalories float64 `json:"target_calories"`
	ProteinG       float64 `json:"protein_g"`
	FatG           float64 `json:"fat_g"`
	CarbsG         float64 `json:"carbs_g"`
}

// FoodPortion is a gram amount of a catalog food. The FoodRecord is a shared
// reference into the catalog snapshot, never owned by the portion.
type FoodPortion struct {
	Food    *FoodRecord
	AmountG float64
}

// Contribution returns the portion's absolute nutrient contribution,
// the per-100g profile scaled by AmountG/100.
func (p FoodPortion) Contribution() NutrientProfile {
	return p.Food.Per100g.Scale(p.AmountG / 100)
}

// MealSlot is one meal of a day with its ordered portions.
type MealSlot struct {
	Name     MealSlotName
	Portions []FoodPortion
}

// Totals sums the contributions of all portions in the slot.
func (m MealSlot) Totals() NutrientProfile {
	var total NutrientProfile
	for _, p := range m.Portions {
		total = total.Add(p.Contribution())
	}
	return total
}

// DayPlan is one day of a meal plan. Day is 1-based.
type DayPlan struct {
	Day   int
	Meals []MealSlot
}

// DailyTotals sums the totals of all meals in the day.
func (d DayPlan) DailyTotals() NutrientProfile {
	var total NutrientProfile
	for _, m := range d.Meals {
		total = total.Add(m.Totals())
	}
	return total
}

// MealPlan is a full multi-day plan. It exclusively owns its days and slots;
// food records remain owned by the catalog.
type MealPlan struct {
	Days           []DayPlan
	AdherenceScore float64
}

// PlanTotals sums the daily totals across all days.
func (p *MealPlan) PlanTotals() NutrientProfile {
	var total NutrientProfile
	for _, d := range p.Days {
		total = total.Add(d.DailyTotals())
	}
	return total
}

// AvgDailyCalories returns plan calories divided by the day count.
func (p *MealPlan) AvgDailyCalories() float64 {
	if len(p.Days) == 0 {
		return 0
	}
	return p.PlanTotals().Calories / float64(len(p.Days))
}
