package models

import "time"

// DietPlan and PersonalizedWorkout are named, immutable text blobs: a
// generated result the user chose to keep.

type DietPlan struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UserID    uint      `json:"user_id" example:"1"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Name      string    `json:"name" example:"Cutting plan"`
	Plan      string    `gorm:"type:text" json:"plan"`
}

type PersonalizedWorkout struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UserID    uint      `json:"user_id" example:"1"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Name      string    `json:"name" example:"12 week program"`
	Plan      string    `gorm:"type:text" json:"plan"`
}
