package models

import "time"

// Workout is an immutable log entry: created once, deleted by its owner,
// never updated.
type Workout struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UserID    uint      `json:"user_id" example:"1"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Date      time.Time `gorm:"type:date" json:"date" example:"2024-03-01"`
	Type      string    `json:"type" example:"Jogging"`
	Duration  float64   `json:"duration" example:"45"`
	Calories  float64   `json:"calories" example:"320"`
	Notes     string    `json:"notes,omitempty"`
}
