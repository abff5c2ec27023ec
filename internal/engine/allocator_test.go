package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/example/diet-planner/internal/catalog"
	"github.com/example/diet-planner/internal/models"
)

func testContext(t *testing.T) *EngineContext {
	t.Helper()
	cat, err := catalog.New(catalog.SeedFoods)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return &EngineContext{Catalog: cat}
}

func testTarget() models.TargetProfile {
	return models.TargetProfile{
		TargetCalories: 2000,
		ProteinG:       175, // 35% of 2000 kcal at 4 kcal/g
		FatG:           55.6,
		CarbsG:         200,
	}
}

func TestAllocate_DaysBounds(t *testing.T) {
	ctx := testContext(t)
	for _, days := range []int{0, -1, 15, 100} {
		_, err := Allocate(ctx, testTarget(), days, nil)
		var daysErr *InvalidDaysError
		if !errors.As(err, &daysErr) {
			t.Errorf("days=%d: expected InvalidDaysError, got %v", days, err)
		}
	}
}

func TestAllocate_PlanShape(t *testing.T) {
	ctx := testContext(t)
	plan, err := Allocate(ctx, testTarget(), 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Days) != 3 {
		t.Fatalf("got %d days, want 3", len(plan.Days))
	}
	for i, day := range plan.Days {
		if day.Day != i+1 {
			t.Errorf("day index %d = %d, want %d", i, day.Day, i+1)
		}
		if len(day.Meals) != 4 {
			t.Fatalf("day %d has %d meals, want 4", day.Day, len(day.Meals))
		}
		for s, meal := range day.Meals {
			if meal.Name != models.SlotOrder[s] {
				t.Errorf("day %d slot %d = %q, want %q", day.Day, s, meal.Name, models.SlotOrder[s])
			}
			if len(meal.Portions) < 2 || len(meal.Portions) > 4 {
				t.Errorf("day %d %s has %d portions, want 2-4", day.Day, meal.Name, len(meal.Portions))
			}
		}
	}

	// Lunch and dinner carry the variety item, breakfast and snack do not.
	day := plan.Days[0]
	if got := len(day.Meals[0].Portions); got != 3 {
		t.Errorf("breakfast has %d portions, want 3", got)
	}
	if got := len(day.Meals[1].Portions); got != 4 {
		t.Errorf("lunch has %d portions, want 4", got)
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	ctx := testContext(t)
	first, err := Allocate(ctx, testTarget(), 7, []models.DietTag{models.TagVeg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Allocate(ctx, testTarget(), 7, []models.DietTag{models.TagVeg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for d := range first.Days {
		for m := range first.Days[d].Meals {
			a := first.Days[d].Meals[m].Portions
			b := second.Days[d].Meals[m].Portions
			if len(a) != len(b) {
				t.Fatalf("day %d meal %d portion counts differ", d, m)
			}
			for p := range a {
				if a[p].Food.Name != b[p].Food.Name || a[p].AmountG != b[p].AmountG {
					t.Errorf("day %d meal %d portion %d differs: %s/%v vs %s/%v",
						d, m, p, a[p].Food.Name, a[p].AmountG, b[p].Food.Name, b[p].AmountG)
				}
			}
		}
	}
}

func TestAllocate_RotationVariesDays(t *testing.T) {
	ctx := testContext(t)
	plan, err := Allocate(ctx, testTarget(), 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The protein bucket has more than one member, so consecutive days must
	// not pick the same protein for the same slot.
	day1 := plan.Days[0].Meals[0].Portions[0].Food.Name
	day2 := plan.Days[1].Meals[0].Portions[0].Food.Name
	if day1 == day2 {
		t.Errorf("breakfast protein identical on consecutive days: %s", day1)
	}
}

func TestAllocate_VeganOnlyVeganFoods(t *testing.T) {
	ctx := testContext(t)
	plan, err := Allocate(ctx, testTarget(), 14, []models.DietTag{models.TagVegan})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			for _, portion := range meal.Portions {
				if !portion.Food.HasTag(models.TagVegan) {
					t.Errorf("vegan plan contains non-vegan food %q", portion.Food.Name)
				}
			}
		}
	}
}

func TestAllocate_ContradictoryTags(t *testing.T) {
	ctx := testContext(t)
	_, err := Allocate(ctx, testTarget(), 7, []models.DietTag{models.TagVegan, models.TagNonVeg})
	var noFoods *NoFeasibleFoodsError
	if !errors.As(err, &noFoods) {
		t.Fatalf("expected NoFeasibleFoodsError, got %v", err)
	}
}

func TestAllocate_PortionCeiling(t *testing.T) {
	ctx := testContext(t)
	plan, err := Allocate(ctx, testTarget(), 14, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			for _, portion := range meal.Portions {
				if portion.AmountG > MaxPortionG {
					t.Errorf("portion of %q is %vg, exceeds ceiling %vg",
						portion.Food.Name, portion.AmountG, float64(MaxPortionG))
				}
				if portion.AmountG <= 0 {
					t.Errorf("portion of %q has non-positive amount %v", portion.Food.Name, portion.AmountG)
				}
			}
		}
	}
}

func TestAllocate_AggregationIdentity(t *testing.T) {
	ctx := testContext(t)
	plan, err := Allocate(ctx, testTarget(), 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fromPortions models.NutrientProfile
	for _, day := range plan.Days {
		var dayTotal models.NutrientProfile
		for _, meal := range day.Meals {
			var mealTotal models.NutrientProfile
			for _, portion := range meal.Portions {
				mealTotal = mealTotal.Add(portion.Contribution())
			}
			if mealTotal != meal.Totals() {
				t.Errorf("day %d %s: totals mismatch", day.Day, meal.Name)
			}
			dayTotal = dayTotal.Add(mealTotal)
		}
		if dayTotal != day.DailyTotals() {
			t.Errorf("day %d: daily totals mismatch", day.Day)
		}
		fromPortions = fromPortions.Add(dayTotal)
	}
	if fromPortions != plan.PlanTotals() {
		t.Errorf("plan totals mismatch: %+v vs %+v", fromPortions, plan.PlanTotals())
	}
}

// stubScorer labels one food name as top suitability and everything else low.
type stubScorer struct {
	favorite string
}

func (s stubScorer) Score(food *models.FoodRecord) (int, float64) {
	if food.Name == s.favorite {
		return 5, 0.9
	}
	return 2, 0.6
}

func TestAllocate_ScorerRanksWithinBucket(t *testing.T) {
	cat, err := catalog.New(catalog.SeedFoods)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	ctx := &EngineContext{Catalog: cat, Scorer: stubScorer{favorite: "Homemade Seitan"}}

	plan, err := Allocate(ctx, testTarget(), 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The favorite dominates the protein bucket in every slot of every day.
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			if got := meal.Portions[0].Food.Name; got != "Homemade Seitan" {
				t.Errorf("day %d %s protein = %q, want scorer favorite", day.Day, meal.Name, got)
			}
		}
	}
}

func TestAllocate_NilScorerDegradesGracefully(t *testing.T) {
	ctx := testContext(t)
	if ctx.Scorer != nil {
		t.Fatal("test context should have no scorer")
	}
	plan, err := Allocate(ctx, testTarget(), 1, nil)
	if err != nil {
		t.Fatalf("rotation-only allocation failed: %v", err)
	}
	if len(plan.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(plan.Days))
	}
}

func TestAllocate_ApproachesCalorieTarget(t *testing.T) {
	ctx := testContext(t)
	target := testTarget()
	plan, err := Allocate(ctx, target, 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	avg := plan.AvgDailyCalories()
	if math.Abs(avg-target.TargetCalories)/target.TargetCalories > 0.5 {
		t.Errorf("average daily calories %v too far from target %v", avg, target.TargetCalories)
	}
	if plan.AdherenceScore < 0 || plan.AdherenceScore > 100 {
		t.Errorf("adherence score %v outside [0,100]", plan.AdherenceScore)
	}
}
