package repository

import (
	"fittrack/internal/models"

	"gorm.io/gorm"
)

type DietPlanRepository interface {
	Create(plan *models.DietPlan) error
	FindAllByUserID(userID uint) ([]models.DietPlan, error)
	DeleteByUserID(id, userID uint) error
}

type dietPlanRepository struct {
	db *gorm.DB
}

func NewDietPlanRepository(db *gorm.DB) DietPlanRepository {
	return &dietPlanRepository{db}
}

func (r *dietPlanRepository) Create(plan *models.DietPlan) error {
	return r.db.Create(plan).Error
}

func (r *dietPlanRepository) FindAllByUserID(userID uint) ([]models.DietPlan, error) {
	var plans []models.DietPlan
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *dietPlanRepository) DeleteByUserID(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.DietPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
