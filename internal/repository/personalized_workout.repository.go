package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type PersonalizedWorkoutRepository interface {
	Create(plan *models.PersonalizedWorkout) error
	FindAllByUserID(userID uint) ([]models.PersonalizedWorkout, error)
	DeleteByUserID(id, userID uint) error
}

type personalizedWorkoutRepository struct {
	db *gorm.DB
}

func NewPersonalizedWorkoutRepository(db *gorm.DB) PersonalizedWorkoutRepository {
	return &personalizedWorkoutRepository{db}
}

func (r *personalizedWorkoutRepository) Create(plan *models.PersonalizedWorkout) error {
	return r.db.Create(plan).Error
}

func (r *personalizedWorkoutRepository) FindAllByUserID(userID uint) ([]models.PersonalizedWorkout, error) {
	var plans []models.PersonalizedWorkout
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *personalizedWorkoutRepository) DeleteByUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.PersonalizedWorkout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
