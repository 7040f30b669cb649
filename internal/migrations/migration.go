package migrations

import (
	"log"

	"gorm.io/gorm"

	"task_planner/internal/models"
)

// Run applies the database schema.
func Run(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully!")
	return nil
}
