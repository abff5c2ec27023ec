// Package catalog holds the read-only food catalog: a static dataset seeded
// into the database at startup and loaded once into an immutable in-memory
// snapshot that serves all planning requests.
package catalog

import (
	"fmt"
	"sort"

	"github.com/example/diet-planner/internal/models"
)

// Bucket identifies one of the four selection pools the allocator draws from.
type Bucket string

const (
	BucketProtein Bucket = "protein"
	BucketCarb    Bucket = "carbohydrate"
	BucketFat     Bucket = "fat"
	BucketExtra   Bucket = "complete_meal_or_snack"
)

// bucketCategories maps each bucket to the food categories it pools.
var bucketCategories = map[Bucket][]models.FoodCategory{
	BucketProtein: {models.CategoryProtein},
	BucketCarb:    {models.CategoryCarbohydrate, models.CategoryVegetable, models.CategoryFruit},
	BucketFat:     {models.CategoryFat},
	BucketExtra:   {models.CategoryCompleteMeal, models.CategorySnack, models.CategoryBeverage},
}

// Catalog is an immutable snapshot of the food catalog, ordered
// alphabetically by name. Safe for concurrent use without locking.
type Catalog struct {
	foods []*models.FoodRecord
}

// New builds a catalog snapshot. Records are validated, normalized and
// sorted by name; the input slice is not retained.
func New(foods []models.FoodRecord) (*Catalog, error) {
	if len(foods) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	owned := make([]*models.FoodRecord, 0, len(foods))
	for i := range foods {
		food := foods[i]
		if err := food.Validate(); err != nil {
			return nil, err
		}
		food.Normalize()
		owned = append(owned, &food)
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].Name < owned[j].Name
	})

	return &Catalog{foods: owned}, nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.foods)
}

// All returns every record in alphabetical order.
func (c *Catalog) All() []*models.FoodRecord {
	out := make([]*models.FoodRecord, len(c.foods))
	copy(out, c.foods)
	return out
}

// Filter returns the records matching every requested tag (AND semantics)
// and, when categories is non-empty, any of the requested categories.
// An empty tag set applies no tag filter. Order is alphabetical by name.
func (c *Catalog) Filter(tags []models.DietTag, categories []models.FoodCategory) []*models.FoodRecord {
	var out []*models.FoodRecord
	for _, food := range c.foods {
		if !hasAllTags(food, tags) {
			continue
		}
		if len(categories) > 0 && !inCategories(food, categories) {
			continue
		}
		out = append(out, food)
	}
	return out
}

// Buckets partitions the tag-filtered catalog into the four allocation
// buckets, each in alphabetical order.
func (c *Catalog) Buckets(tags []models.DietTag) map[Bucket][]*models.FoodRecord {
	buckets := make(map[Bucket][]*models.FoodRecord, len(bucketCategories))
	for bucket, categories := range bucketCategories {
		buckets[bucket] = c.Filter(tags, categories)
	}
	return buckets
}

func hasAllTags(food *models.FoodRecord, tags []models.DietTag) bool {
	for _, t := range tags {
		if !food.HasTag(t) {
			return false
		}
	}
	return true
}

func inCategories(food *models.FoodRecord, categories []models.FoodCategory) bool {
	for _, c := range categories {
		if food.Category == c {
			return true
		}
	}
	return false
}
