package engine

import "github.com/example/diet-planner/internal/models"

// AdherenceScore rates how closely a plan's average realized daily nutrition
// matches the target, on a 0-100 scale. Each of the four tracked quantities
// contributes its relative deviation, clipped to [0,1] before averaging, so
// one badly unbalanced macro can neither drag the score below zero nor be
// netted against an opposite deviation in another. Depends only on
// per-quantity averages, so it is invariant under day reordering.
func AdherenceScore(plan *models.MealPlan, target models.TargetProfile) float64 {
	days := len(plan.Days)
	if days == 0 {
		return 0
	}

	avg := plan.PlanTotals().Scale(1 / float64(days))

	deviations := []float64{
		clippedDeviation(avg.Calories, target.TargetCalories),
		clippedDeviation(avg.Protein, target.ProteinG),
		clippedDeviation(avg.Fat, target.FatG),
		clippedDeviation(avg.Carbs, target.CarbsG),
	}

	var sum float64
	for _, d := range deviations {
		sum += d
	}
	return 100 * (1 - sum/float64(len(deviations)))
}

// clippedDeviation is |realized-target|/target clipped to [0,1]. A zero
// target with a nonzero realized value counts as a full deviation.
func clippedDeviation(realized, target float64) float64 {
	if target <= 0 {
		if realized == 0 {
			return 0
		}
		return 1
	}
	dev := (realized - target) / target
	if dev < 0 {
		dev = -dev
	}
	if dev > 1 {
		dev = 1
	}
	return dev
}
