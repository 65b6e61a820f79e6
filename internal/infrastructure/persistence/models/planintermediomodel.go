package models

import "time"

// PlanIntermedioModel is the intermediate extension row, keyed by the same id
// as its owning plan.
type PlanIntermedioModel struct {
	ID                     string `gorm:"primaryKey;size:16"`
	MonitoreoTiempoReal    bool   `gorm:"not null"`
	AlertasRiesgo          bool   `gorm:"not null"`
	ComunicacionEntrenador bool   `gorm:"not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (PlanIntermedioModel) TableName() string {
	return "plan_intermedio"
}
