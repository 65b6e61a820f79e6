package plan

import "fmt"

// DescriptionFeature is a marketing description attached to a tier label, not
// to a specific plan id: every plan of the same tier shares these rows.
type DescriptionFeature struct {
	ID          string
	TipoPlan    Tier
	Description string
}

// NewDescriptionFeature validates and builds a feature row.
func NewDescriptionFeature(id string, tipoPlan Tier, description string) (*DescriptionFeature, error) {
	if _, err := ParseTier(string(tipoPlan)); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, fmt.Errorf("feature description is required")
	}
	return &DescriptionFeature{
		ID:          id,
		TipoPlan:    tipoPlan,
		Description: description,
	}, nil
}
