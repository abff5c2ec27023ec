package engine

import (
	"github.com/example/diet-planner/internal/catalog"
	"github.com/example/diet-planner/internal/models"
	"github.com/example/diet-planner/internal/suitability"
)

// Plan size bounds.
const (
	MinDays = 1
	MaxDays = 14
)

// Portion sizing bounds in grams. The ceiling guards against degenerate
// low-calorie-density foods producing absurd portions.
const (
	MinPortionG = 10
	MaxPortionG = 400
)

// nudgePasses bounds the macro-refinement loop per slot.
const nudgePasses = 3

// SlotShare assigns a meal slot its share of the daily calorie target.
// Macro targets for the slot follow the same share.
type SlotShare struct {
	Name  models.MealSlotName
	Share float64
}

// DefaultSlotShares is the reference slot policy: breakfast 25%, lunch 35%,
// dinner 30%, snack 10% of daily calories.
var DefaultSlotShares = []SlotShare{
	{Name: models.SlotBreakfast, Share: 0.25},
	{Name: models.SlotLunch, Share: 0.35},
	{Name: models.SlotDinner, Share: 0.30},
	{Name: models.SlotSnack, Share: 0.10},
}

// varietyShareThreshold: slots at or above this calorie share also receive a
// complete-meal/snack item for variety (lunch and dinner by default).
const varietyShareThreshold = 0.30

// EngineContext carries the process-wide read-only collaborators of the
// planning engine. It is constructed once at startup and passed explicitly;
// a nil Scorer means suitability ranking is degraded to rotation order.
type EngineContext struct {
	Catalog *catalog.Catalog
	Scorer  suitability.Scorer
}

// bucketOrder fixes the feasibility-check and selection order of the four
// allocation buckets.
var bucketOrder = []catalog.Bucket{
	catalog.BucketProtein,
	catalog.BucketCarb,
	catalog.BucketFat,
	catalog.BucketExtra,
}

// Allocate builds a multi-day meal plan approximating the daily target under
// the given diet tags. The algorithm is a greedy deterministic heuristic:
// alphabetical buckets, per-day rotation offsets, suitability as a secondary
// ranking key, equal initial calorie shares and a bounded nudge loop.
// Identical inputs always produce identical plans.
func Allocate(ctx *EngineContext, target models.TargetProfile, days int, tags []models.DietTag) (*models.MealPlan, error) {
	if days < MinDays || days > MaxDays {
		return nil, &InvalidDaysError{Days: days}
	}

	buckets := ctx.Catalog.Buckets(tags)
	for _, b := range bucketOrder {
		if len(buckets[b]) == 0 {
			return nil, &NoFeasibleFoodsError{Bucket: b, Tags: tags}
		}
	}

	plan := &models.MealPlan{Days: make([]models.DayPlan, 0, days)}
	for day := 1; day <= days; day++ {
		dayPlan := models.DayPlan{Day: day, Meals: make([]models.MealSlot, 0, len(DefaultSlotShares))}
		for slotIndex, slot := range DefaultSlotShares {
			slotTarget := models.NutrientProfile{
				Calories: target.TargetCalories * slot.Share,
				Protein:  target.ProteinG * slot.Share,
				Fat:      target.FatG * slot.Share,
				Carbs:    target.CarbsG * slot.Share,
			}
			meal := ctx.buildSlot(slot.Name, slotTarget, buckets, day, slotIndex, slot.Share)
			dayPlan.Meals = append(dayPlan.Meals, meal)
		}
		plan.Days = append(plan.Days, dayPlan)
	}

	plan.AdherenceScore = AdherenceScore(plan, target)
	return plan, nil
}

// buildSlot selects and sizes the foods of one meal slot.
func (ctx *EngineContext) buildSlot(
	name models.MealSlotName,
	slotTarget models.NutrientProfile,
	buckets map[catalog.Bucket][]*models.FoodRecord,
	day, slotIndex int,
	share float64,
) models.MealSlot {
	roles := []catalog.Bucket{catalog.BucketProtein, catalog.BucketCarb, catalog.BucketFat}
	if share >= varietyShareThreshold {
		roles = append(roles, catalog.BucketExtra)
	}

	selected := make([]*models.FoodRecord, 0, len(roles))
	for _, role := range roles {
		food := ctx.pickFromBucket(buckets[role], day, slotIndex)
		if food != nil {
			selected = append(selected, food)
		}
	}

	portions := sizePortions(selected, slotTarget)
	return models.MealSlot{Name: name, Portions: portions}
}

// pickFromBucket walks the alphabetical bucket cyclically starting at the
// rotation offset (day + slot) mod size. With a scorer, the first food seen
// with the highest suitability label wins, so rotation still breaks label
// ties; without one, the food at the offset is taken as-is.
func (ctx *EngineContext) pickFromBucket(bucket []*models.FoodRecord, day, slotIndex int) *models.FoodRecord {
	if len(bucket) == 0 {
		return nil
	}
	offset := (day + slotIndex) % len(bucket)

	if ctx.Scorer == nil {
		return bucket[offset]
	}

	best := bucket[offset]
	bestLabel, _ := ctx.Scorer.Score(best)
	for i := 1; i < len(bucket); i++ {
		candidate := bucket[(offset+i)%len(bucket)]
		label, _ := ctx.Scorer.Score(candidate)
		if label > bestLabel {
			best = candidate
			bestLabel = label
		}
	}
	return best
}

// sizePortions assigns gram amounts: an equal calorie share per food first,
// then up to three nudge passes that rescale the food richest in the
// worst-deviating macro. Amounts stay within [MinPortionG, MaxPortionG].
func sizePortions(foods []*models.FoodRecord, slotTarget models.NutrientProfile) []models.FoodPortion {
	portions := make([]models.FoodPortion, 0, len(foods))
	var sizable []*models.FoodRecord
	for _, f := range foods {
		if f.Per100g.Calories > 0 {
			sizable = append(sizable, f)
		}
	}
	if len(sizable) == 0 {
		return portions
	}

	shareCalories := slotTarget.Calories / float64(len(sizable))
	for _, f := range sizable {
		amount := 100 * shareCalories / f.Per100g.Calories
		portions = append(portions, models.FoodPortion{Food: f, AmountG: clampAmount(amount)})
	}

	for pass := 0; pass < nudgePasses; pass++ {
		if !nudge(portions, slotTarget) {
			break
		}
	}
	return portions
}

// nudge rescales one portion toward the slot's worst-deviating macro target.
// Returns false once all macro deviations are within tolerance or no
// adjustment is possible.
func nudge(portions []models.FoodPortion, slotTarget models.NutrientProfile) bool {
	var totals models.NutrientProfile
	for _, p := range portions {
		totals = totals.Add(p.Contribution())
	}

	type macro struct {
		target, actual float64
		per100g        func(*models.FoodRecord) float64
	}
	macros := []macro{
		{slotTarget.Protein, totals.Protein, func(f *models.FoodRecord) float64 { return f.Per100g.Protein }},
		{slotTarget.Fat, totals.Fat, func(f *models.FoodRecord) float64 { return f.Per100g.Fat }},
		{slotTarget.Carbs, totals.Carbs, func(f *models.FoodRecord) float64 { return f.Per100g.Carbs }},
	}

	worst := -1
	worstDev := 0.0
	for i, m := range macros {
		if m.target <= 0 {
			continue
		}
		dev := (m.actual - m.target) / m.target
		if abs(dev) > abs(worstDev) {
			worst = i
			worstDev = dev
		}
	}
	// Within 2% on every macro: good enough.
	if worst < 0 || abs(worstDev) < 0.02 {
		return false
	}

	// The food richest in the deviating macro moves the needle most per gram.
	m := macros[worst]
	richest := -1
	for i, p := range portions {
		if richest < 0 || m.per100g(p.Food) > m.per100g(portions[richest].Food) {
			richest = i
		}
	}
	if richest < 0 || m.per100g(portions[richest].Food) <= 0 {
		return false
	}

	factor := clampFactor(m.target / m.actual)
	adjusted := clampAmount(portions[richest].AmountG * factor)
	if adjusted == portions[richest].AmountG {
		return false
	}
	portions[richest].AmountG = adjusted
	return true
}

func clampAmount(amount float64) float64 {
	if amount < MinPortionG {
		return MinPortionG
	}
	if amount > MaxPortionG {
		return MaxPortionG
	}
	return amount
}

// clampFactor bounds a single nudge to ±25% of the current amount.
func clampFactor(factor float64) float64 {
	if factor < 0.75 {
		return 0.75
	}
	if factor > 1.25 {
		return 1.25
	}
	return factor
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
