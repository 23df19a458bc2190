package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(workout *models.Workout) error
	FindAllByUserID(userID uint, limit int) ([]models.Workout, error)
	DeleteByUserID(id, userID uint) error
	DistinctDatesByUserID(userID uint) ([]time.Time, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db}
}

func (r *workoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

func (r *workoutRepository) FindAllByUserID(userID uint, limit int) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&workouts).Error
	return workouts, err
}

// DeleteByUserID removes the workout only when it belongs to the user.
// A foreign or unknown id matches zero rows and reports ErrRecordNotFound.
func (r *workoutRepository) DeleteByUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Workout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DistinctDatesByUserID returns every workout date once, newest first.
// Streak computation walks the full history, not a recent page.
func (r *workoutRepository) DistinctDatesByUserID(userID uint) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}
