package database

import (
	"log"

	"gorm.io/gorm"

	"swasthya/internal/models"
)

func MigrateDatabase(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&models.FoodRow{}); err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
