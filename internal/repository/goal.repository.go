package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type GoalRepository interface {
	Create(goal *models.Goal) error
	FindAllByUserID(userID uint) ([]models.Goal, error)
	SetCompleted(id, userID uint, completed bool) error
	DeleteByUserID(id, userID uint) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db}
}

func (r *goalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

func (r *goalRepository) FindAllByUserID(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("user_id = ?", userID).
		Order("target_date ASC").
		Find(&goals).Error
	return goals, err
}

func (r *goalRepository) SetCompleted(id, userID uint, completed bool) error {
	result := r.db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *goalRepository) DeleteByUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
