package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"swasthya/internal/models"
)

// FoodRepository reads and seeds the catalog table.
type FoodRepository interface {
	FindAll() ([]models.FoodRow, error)
	FindByName(name string) (*models.FoodRow, error)
	Upsert(rows []models.FoodRow) error
	Count() (int64, error)
	DeleteAll() (int64, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

// FindAll returns rows in catalog order.
func (r *foodRepository) FindAll() ([]models.FoodRow, error) {
	var rows []models.FoodRow
	if err := r.db.Order("position asc").Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return rows, nil
}

func (r *foodRepository) FindByName(name string) (*models.FoodRow, error) {
	var row models.FoodRow
	err := r.db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("food %q: %w", name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("find food %q: %w", name, err)
	}
	return &row, nil
}

// Upsert inserts rows, overwriting existing rows with the same name.
func (r *foodRepository) Upsert(rows []models.FoodRow) error {
	if len(rows) == 0 {
		return nil
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).CreateInBatches(rows, 100).Error
	if err != nil {
		log.Printf("Error upserting %d foods: %v", len(rows), err)
		return fmt.Errorf("upsert foods: %w", err)
	}
	return nil
}

func (r *foodRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.FoodRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return count, nil
}

func (r *foodRepository) DeleteAll() (int64, error) {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.FoodRow{})
	if result.Error != nil {
		return 0, fmt.Errorf("clear foods: %w", result.Error)
	}
	return result.RowsAffected, nil
}
