package models

import "time"

// Goal carries the only toggleable flag in the data model. The canonical
// date column is target_date; a legacy "date" column is renamed during
// migration (see database.MigrateDatabase).
type Goal struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UserID     uint      `json:"user_id" example:"1"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	Goal       string    `json:"goal" example:"Run a half marathon"`
	TargetDate time.Time `gorm:"column:target_date;type:date" json:"target_date" example:"2024-06-01"`
	Completed  bool      `gorm:"default:false" json:"completed" example:"false"`
}

func (Goal) TableName() string {
	return "user_goals"
}
