package database

import (
	"log"

	"fittrack/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	// Early deployments created user_goals with a "date" column. target_date
	// is the canonical name; rename once instead of branching at query time.
	// TODO: drop this shim after every environment has been migrated.
	migrator := DB.Migrator()
	if migrator.HasTable(&models.Goal{}) &&
		migrator.HasColumn(&models.Goal{}, "date") &&
		!migrator.HasColumn(&models.Goal{}, "target_date") {
		log.Println("Renaming legacy user_goals.date column to target_date")
		if err := migrator.RenameColumn(&models.Goal{}, "date", "target_date"); err != nil {
			return err
		}
	}

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Workout{},
		&models.Goal{},
		&models.DietPlan{},
		&models.PersonalizedWorkout{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
