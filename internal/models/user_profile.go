package models

import (
	"time"
)

// UserProfile holds the measurements every prediction form can be
// pre-filled from. One row per user, upserted on user_id.
type UserProfile struct {
	ID                uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt         time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID            uint      `gorm:"uniqueIndex" json:"user_id" example:"1"`
	Name              string    `json:"name" example:"Jane"`
	HeightCm          *float64  `gorm:"column:height_cm" json:"height_cm" example:"170"`
	WeightKg          *float64  `gorm:"column:weight_kg" json:"weight_kg" example:"65.5"`
	Age               *int      `json:"age" example:"29"`
	Gender            string    `json:"gender" example:"Female"`
	Allergies         string    `json:"allergies,omitempty"`
	MedicalConditions string    `gorm:"column:medical_conditions" json:"medical_conditions,omitempty"`
}
