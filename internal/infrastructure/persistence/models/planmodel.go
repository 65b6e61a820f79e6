// Package models holds the gorm persistence models. They are the
// anti-corruption layer between the domain aggregates and the table layout.
package models

import "time"

// PlanModel is the base plan row. The short id is the primary key shared with
// the extension tables.
type PlanModel struct {
	ID        string  `gorm:"primaryKey;size:16"`
	Name      string  `gorm:"not null;size:255"`
	TypePlan  string  `gorm:"not null;size:20;index"`
	StartDate string  `gorm:"not null;size:50"`
	EndDate   string  `gorm:"not null;size:50"`
	Value     float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PlanModel) TableName() string {
	return "plan"
}
