package models

import "time"

// PlanPremiumModel is the premium extension row, keyed by the same id as its
// owning plan.
type PlanPremiumModel struct {
	ID                  string `gorm:"primaryKey;size:16"`
	SesionesVirtuales   int    `gorm:"not null"`
	Masajes             bool   `gorm:"not null"`
	CuidadoPosEjercicio bool   `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (PlanPremiumModel) TableName() string {
	return "plan_premium"
}
