package engine

import (
	"strings"

	"github.com/example/diet-planner/internal/models"
)

// Sex values accepted by the target calculator.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Goal values accepted by the target calculator.
const (
	GoalCut      = "cut"
	GoalMaintain = "maintain"
	GoalBulk     = "bulk"
)

// activityFactors maps activity level to its TDEE multiplier. This is the
// single source of truth for valid activity levels.
var activityFactors = map[string]float64{
	"sedentary":   1.20,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.90,
}

// goalAdjustments maps goal to its target-calorie adjustment relative to TDEE.
var goalAdjustments = map[string]float64{
	GoalCut:      -0.20,
	GoalMaintain: 0.00,
	GoalBulk:     0.15,
}

// Macro energy densities in kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
	KcalPerGramCarbs   = 4
)

// MacroSplit is the share of target calories assigned to each macro.
type MacroSplit struct {
	Protein float64
	Fat     float64
	Carbs   float64
}

// DefaultMacroSplit is the reference macro policy: protein 35%, fat 25%,
// carbs 40% of target calories.
var DefaultMacroSplit = MacroSplit{Protein: 0.35, Fat: 0.25, Carbs: 0.40}

// Biometric input bounds.
const (
	MinAge      = 10
	MaxAge      = 120
	MinHeightCm = 100
	MaxHeightCm = 250
	MinWeightKg = 30
	MaxWeightKg = 300
)

// TargetInput holds the biometric and goal inputs for target computation.
type TargetInput struct {
	Sex           string
	Age           int
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	Goal          string
}

// TargetResult is the full output of target computation: the derived energy
// figures plus the macro-gram targets.
type TargetResult struct {
	BMR            float64
	ActivityFactor float64
	TDEE           float64
	TargetCalories float64
	ProteinG       float64
	FatG           float64
	CarbsG         float64
}

// TargetProfile converts the result into the daily target a plan is built
// against.
func (r TargetResult) TargetProfile() models.TargetProfile {
	return models.TargetProfile{
		TargetCalories: r.TargetCalories,
		ProteinG:       r.ProteinG,
		FatG:           r.FatG,
		CarbsG:         r.CarbsG,
	}
}

// ComputeTargets derives BMR (Mifflin-St Jeor), TDEE, goal-adjusted target
// calories and macro-gram targets from biometric inputs. Deterministic and
// side-effect-free; the only failure mode is input validation.
func ComputeTargets(in TargetInput) (TargetResult, error) {
	sex := strings.ToLower(in.Sex)
	if sex != SexMale && sex != SexFemale {
		return TargetResult{}, &ValidationError{Field: "sex", Value: in.Sex, Allowed: "male, female"}
	}
	if in.Age < MinAge || in.Age > MaxAge {
		return TargetResult{}, rangeError("age", float64(in.Age), MinAge, MaxAge)
	}
	if in.HeightCm < MinHeightCm || in.HeightCm > MaxHeightCm {
		return TargetResult{}, rangeError("height_cm", in.HeightCm, MinHeightCm, MaxHeightCm)
	}
	if in.WeightKg < MinWeightKg || in.WeightKg > MaxWeightKg {
		return TargetResult{}, rangeError("weight_kg", in.WeightKg, MinWeightKg, MaxWeightKg)
	}

	factor, ok := activityFactors[strings.ToLower(in.ActivityLevel)]
	if !ok {
		return TargetResult{}, &ValidationError{
			Field:   "activity_level",
			Value:   in.ActivityLevel,
			Allowed: "sedentary, light, moderate, active, very_active",
		}
	}

	adjustment, ok := goalAdjustments[strings.ToLower(in.Goal)]
	if !ok {
		return TargetResult{}, &ValidationError{Field: "goal", Value: in.Goal, Allowed: "cut, maintain, bulk"}
	}

	// Mifflin-St Jeor: shared terms, sex-specific constant.
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * factor
	targetCalories := tdee * (1 + adjustment)

	return TargetResult{
		BMR:            bmr,
		ActivityFactor: factor,
		TDEE:           tdee,
		TargetCalories: targetCalories,
		ProteinG:       targetCalories * DefaultMacroSplit.Protein / KcalPerGramProtein,
		FatG:           targetCalories * DefaultMacroSplit.Fat / KcalPerGramFat,
		CarbsG:         targetCalories * DefaultMacroSplit.Carbs / KcalPerGramCarbs,
	}, nil
}
