package catalog

import (
	"sort"
	"testing"

	"github.com/example/diet-planner/internal/models"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New(SeedFoods)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return cat
}

func TestNew_EmptyDataset(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty dataset")
	}
}

func TestNew_RejectsInvalidRecord(t *testing.T) {
	bad := []models.FoodRecord{{
		Name:      "Mystery Item",
		Category:  "dessert",
		CostLevel: models.CostLow,
	}}
	if _, err := New(bad); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestFilter_EmptyTagsReturnsAll(t *testing.T) {
	cat := testCatalog(t)
	got := cat.Filter(nil, nil)
	if len(got) != len(SeedFoods) {
		t.Errorf("got %d foods, want %d", len(got), len(SeedFoods))
	}
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Name < got[j].Name }) {
		t.Error("filter result not in alphabetical order")
	}
}

func TestFilter_ANDSemantics(t *testing.T) {
	cat := testCatalog(t)
	got := cat.Filter([]models.DietTag{models.TagVegan, models.TagBudget}, nil)
	if len(got) == 0 {
		t.Fatal("expected vegan budget foods in seed dataset")
	}
	for _, food := range got {
		if !food.HasTag(models.TagVegan) || !food.HasTag(models.TagBudget) {
			t.Errorf("food %q does not carry both requested tags", food.Name)
		}
	}
}

func TestFilter_ContradictoryTagsEmpty(t *testing.T) {
	cat := testCatalog(t)
	if got := cat.Filter([]models.DietTag{models.TagVegan, models.TagNonVeg}, nil); len(got) != 0 {
		t.Errorf("vegan+non_veg returned %d foods, want 0", len(got))
	}
	if got := cat.Filter([]models.DietTag{models.TagVeg, models.TagNonVeg}, nil); len(got) != 0 {
		t.Errorf("veg+non_veg returned %d foods, want 0", len(got))
	}
}

func TestFilter_VeganImpliesVeg(t *testing.T) {
	cat := testCatalog(t)
	veg := cat.Filter([]models.DietTag{models.TagVeg}, nil)
	for _, food := range veg {
		if food.HasTag(models.TagNonVeg) {
			t.Errorf("veg filter returned non-veg food %q", food.Name)
		}
	}

	// Every vegan food satisfies the vegetarian filter via normalization.
	vegan := cat.Filter([]models.DietTag{models.TagVegan}, nil)
	vegNames := make(map[string]bool, len(veg))
	for _, food := range veg {
		vegNames[food.Name] = true
	}
	for _, food := range vegan {
		if !vegNames[food.Name] {
			t.Errorf("vegan food %q missing from vegetarian filter", food.Name)
		}
	}
}

func TestFilter_BudgetDerivedFromCost(t *testing.T) {
	cat := testCatalog(t)
	for _, food := range cat.Filter([]models.DietTag{models.TagBudget}, nil) {
		if food.CostLevel == models.CostHigh {
			t.Errorf("budget filter returned high-cost food %q", food.Name)
		}
	}
	// High-cost foods never qualify.
	for _, food := range cat.All() {
		if food.CostLevel == models.CostHigh && food.HasTag(models.TagBudget) {
			t.Errorf("high-cost food %q carries budget tag", food.Name)
		}
	}
}

func TestFilter_CategoryFilter(t *testing.T) {
	cat := testCatalog(t)
	got := cat.Filter(nil, []models.FoodCategory{models.CategoryFat})
	if len(got) == 0 {
		t.Fatal("expected fat-category foods")
	}
	for _, food := range got {
		if food.Category != models.CategoryFat {
			t.Errorf("food %q has category %q, want fat", food.Name, food.Category)
		}
	}
}

func TestBuckets_AllPopulatedUnfiltered(t *testing.T) {
	cat := testCatalog(t)
	buckets := cat.Buckets(nil)
	for _, bucket := range []Bucket{BucketProtein, BucketCarb, BucketFat, BucketExtra} {
		if len(buckets[bucket]) == 0 {
			t.Errorf("bucket %s is empty on the unfiltered catalog", bucket)
		}
	}
}

func TestBuckets_CategoryMembership(t *testing.T) {
	cat := testCatalog(t)
	buckets := cat.Buckets(nil)
	for _, food := range buckets[BucketCarb] {
		switch food.Category {
		case models.CategoryCarbohydrate, models.CategoryVegetable, models.CategoryFruit:
		default:
			t.Errorf("carb bucket contains %q with category %q", food.Name, food.Category)
		}
	}
	for _, food := range buckets[BucketExtra] {
		switch food.Category {
		case models.CategoryCompleteMeal, models.CategorySnack, models.CategoryBeverage:
		default:
			t.Errorf("extra bucket contains %q with category %q", food.Name, food.Category)
		}
	}
}

func TestSeedFoods_AllValid(t *testing.T) {
	seen := make(map[string]bool, len(SeedFoods))
	for i := range SeedFoods {
		food := SeedFoods[i]
		if err := food.Validate(); err != nil {
			t.Errorf("seed food invalid: %v", err)
		}
		if seen[food.Name] {
			t.Errorf("duplicate seed food name %q", food.Name)
		}
		seen[food.Name] = true
	}
}
