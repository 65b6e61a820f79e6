package models

import "time"

// DescriptionFeatureModel is a feature row. It links to plans by tier label,
// not by plan id.
type DescriptionFeatureModel struct {
	ID          string `gorm:"primaryKey;size:16"`
	TipoPlan    string `gorm:"not null;size:20;index"`
	Description string `gorm:"not null;size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DescriptionFeatureModel) TableName() string {
	return "descriptionFeature"
}
