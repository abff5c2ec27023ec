package suitability

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/diet-planner/internal/models"
)

func testFood() *models.FoodRecord {
	return &models.FoodRecord{
		Name:      "Grilled Chicken Breast",
		Category:  models.CategoryProtein,
		Per100g:   models.NutrientProfile{Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0},
		Tags:      []models.DietTag{models.TagNonVeg, models.TagHalal},
		CostLevel: models.CostMedium,
	}
}

func TestFeatures_VectorShape(t *testing.T) {
	features := Features(testFood())
	if len(features) != FeatureCount {
		t.Fatalf("got %d features, want %d", len(features), FeatureCount)
	}

	if features[0] != 165 || features[1] != 31 || features[2] != 3.6 || features[3] != 0 {
		t.Errorf("raw macro features wrong: %v", features[:4])
	}
	if got, want := features[4], 31.0/165; math.Abs(got-want) > 1e-12 {
		t.Errorf("protein density = %v, want %v", got, want)
	}
	if got, want := features[7], 31.0*4/165; math.Abs(got-want) > 1e-12 {
		t.Errorf("protein percentage = %v, want %v", got, want)
	}
	if features[8] != 1.65 {
		t.Errorf("calorie density = %v, want 1.65", features[8])
	}
	if features[10] != 2 {
		t.Errorf("cost encoding = %v, want 2 (medium)", features[10])
	}
	// is_veg, is_vegan, is_non_veg, is_halal, is_budget, is_lactose_free
	wantTags := []float64{0, 0, 1, 1, 0, 0}
	for i, want := range wantTags {
		if features[11+i] != want {
			t.Errorf("tag feature %d = %v, want %v", i, features[11+i], want)
		}
	}
}

func TestFeatures_ZeroCalorieFood(t *testing.T) {
	food := &models.FoodRecord{
		Name:      "Water",
		Category:  models.CategoryBeverage,
		CostLevel: models.CostLow,
	}
	features := Features(food)
	for i, f := range features {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Errorf("feature %d is %v for zero-calorie food", i, f)
		}
	}
}

func TestNutritionalScore_FavorsLeanProtein(t *testing.T) {
	lean := models.NutrientProfile{Calories: 135, Protein: 30.1, Fat: 0.7, Carbs: 0}
	oil := models.NutrientProfile{Calories: 884, Protein: 0, Fat: 100, Carbs: 0}
	if NutritionalScore(lean) <= NutritionalScore(oil) {
		t.Error("lean protein should outscore pure fat")
	}
}

// proteinGateModel builds a two-class ensemble that votes class 5 for foods
// with protein above 20g/100g and class 1 otherwise.
func proteinGateModel() *Model {
	gate := Tree{Nodes: []Node{
		{Feature: 1, Threshold: 20, Left: 1, Right: 2},
		{Feature: -1, Value: 0},
		{Feature: -1, Value: 4},
	}}
	inverse := Tree{Nodes: []Node{
		{Feature: 1, Threshold: 20, Left: 1, Right: 2},
		{Feature: -1, Value: 4},
		{Feature: -1, Value: 0},
	}}
	return &Model{
		Classes:      []int{1, 5},
		LearningRate: 1,
		InitScores:   []float64{0, 0},
		Trees:        [][]Tree{{inverse}, {gate}},
	}
}

func TestModel_Score(t *testing.T) {
	m := proteinGateModel()

	label, confidence := m.Score(testFood()) // 31g protein
	if label != 5 {
		t.Errorf("label = %d, want 5", label)
	}
	if confidence <= 0.5 || confidence > 1 {
		t.Errorf("confidence = %v, want in (0.5, 1]", confidence)
	}

	banana := &models.FoodRecord{
		Name:      "Organic Banana",
		Category:  models.CategoryFruit,
		Per100g:   models.NutrientProfile{Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 22.8},
		Tags:      []models.DietTag{models.TagVeg, models.TagVegan},
		CostLevel: models.CostLow,
	}
	if label, _ := m.Score(banana); label != 1 {
		t.Errorf("label = %d, want 1", label)
	}
}

func TestModel_ScoreDeterministic(t *testing.T) {
	m := proteinGateModel()
	food := testFood()
	label1, conf1 := m.Score(food)
	label2, conf2 := m.Score(food)
	if label1 != label2 || conf1 != conf2 {
		t.Error("inference is not deterministic")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	data, err := json.Marshal(proteinGateModel())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if label, _ := m.Score(testFood()); label != 5 {
		t.Errorf("loaded model label = %d, want 5", label)
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing artifact")
	}
}

func TestLoad_RejectsCorruptArtifacts(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"not json":        `{{{`,
		"no classes":      `{"classes":[],"learning_rate":1,"init_scores":[],"trees":[]}`,
		"count mismatch":  `{"classes":[1,5],"learning_rate":1,"init_scores":[0],"trees":[[]]}`,
		"bad feature":     `{"classes":[1],"learning_rate":1,"init_scores":[0],"trees":[[{"nodes":[{"feature":99,"threshold":0,"left":0,"right":0,"value":0}]}]]}`,
		"zero learn rate": `{"classes":[1],"learning_rate":0,"init_scores":[0],"trees":[[]]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error for corrupt artifact")
			}
		})
	}
}
