package utils

import (
	"fmt"
	"log"

	"swasthya/internal/catalog"
	"swasthya/internal/repository"
)

// SeedFoods upserts every record of cat into the food table and returns the
// resulting row count. Existing rows with the same name are overwritten.
func SeedFoods(repo repository.FoodRepository, cat *catalog.Catalog) (int64, error) {
	rows, err := cat.Rows()
	if err != nil {
		return 0, fmt.Errorf("convert catalog: %w", err)
	}

	log.Printf("Seeding %d foods...", len(rows))
	if err := repo.Upsert(rows); err != nil {
		return 0, err
	}

	count, err := repo.Count()
	if err != nil {
		return 0, err
	}
	log.Printf("Seeding completed: %d foods in table", count)
	return count, nil
}

// ClearFoods removes every row and reports how many were deleted.
func ClearFoods(repo repository.FoodRepository) (int64, error) {
	deleted, err := repo.DeleteAll()
	if err != nil {
		return 0, err
	}
	log.Printf("Deleted %d foods", deleted)
	return deleted, nil
}

// LoadCatalog reads the stored rows back into a catalog, failing on an empty
// table so a server never starts without foods.
func LoadCatalog(repo repository.FoodRepository) (*catalog.Catalog, error) {
	rows, err := repo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("food table is empty, run the seeder first")
	}
	return catalog.FromRows(rows)
}
