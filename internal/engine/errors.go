package engine

import (
	"fmt"

	"github.com/example/diet-planner/internal/catalog"
	"github.com/example/diet-planner/internal/models"
)

// ValidationError reports an out-of-range or unrecognized input field.
// Inputs are never silently clamped; the offending field and its allowed
// bounds are surfaced to the caller.
type ValidationError struct {
	Field   string
	Value   string
	Allowed string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (allowed: %s)", e.Field, e.Value, e.Allowed)
}

func rangeError(field string, value, min, max float64) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   fmt.Sprintf("%g", value),
		Allowed: fmt.Sprintf("%g to %g", min, max),
	}
}

// InvalidDaysError reports a day count outside the supported range.
type InvalidDaysError struct {
	Days int
}

func (e *InvalidDaysError) Error() string {
	return fmt.Sprintf("invalid days: %d (allowed: %d to %d)", e.Days, MinDays, MaxDays)
}

// NoFeasibleFoodsError reports that the requested diet tags starved one of
// the allocation buckets; no plan is generated in that case.
type NoFeasibleFoodsError struct {
	Bucket catalog.Bucket
	Tags   []models.DietTag
}

func (e *NoFeasibleFoodsError) Error() string {
	return fmt.Sprintf("no foods available in %s bucket for diet tags %v", e.Bucket, e.Tags)
}
