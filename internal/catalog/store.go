package catalog

import (
	"errors"
	"fmt"

	"github.com/example/diet-planner/internal/models"
	"gorm.io/gorm"
)

// Store handles food catalog persistence. Writes happen only during the
// startup seed; all request-path reads go through the in-memory Catalog.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on an open database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Seed inserts the static dataset, skipping records that already exist.
// It is idempotent across restarts.
func (s *Store) Seed(foods []models.FoodRecord) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range foods {
			food := foods[i]
			if err := food.Validate(); err != nil {
				return fmt.Errorf("seed dataset invalid: %w", err)
			}

			var existing models.FoodRecord
			err := tx.Where("name = ?", food.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Create(&food).Error; err != nil {
				return fmt.Errorf("failed to seed food %q: %w", food.Name, err)
			}
		}
		return nil
	})
}

// LoadAll reads every food record ordered by name.
func (s *Store) LoadAll() ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	err := s.db.Order("name ASC").Find(&foods).Error
	return foods, err
}
