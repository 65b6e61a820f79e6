// Package plan holds the plan aggregate and its repository contracts.
//
// A plan is modeled as a tagged union over its tier: the base fields are always
// present, and the intermediate/premium benefit structs are attached only for
// the tiers that own them. The three-table storage layout is a persistence
// detail handled at the repository boundary.
package plan

import "fmt"

// IntermediateBenefits are the fields stored in the intermediate extension row.
type IntermediateBenefits struct {
	MonitoreoTiempoReal    bool
	AlertasRiesgo          bool
	ComunicacionEntrenador bool
}

// PremiumBenefits are the fields stored in the premium extension row.
type PremiumBenefits struct {
	SesionesVirtuales   int
	Masajes             bool
	CuidadoPosEjercicio bool
}

// Plan is the aggregate combining the base record with the benefit extensions
// owned by its tier. Intermediate is non-nil for intermedio and premium plans,
// Premium only for premium plans.
type Plan struct {
	ID           string
	Name         string
	Tier         Tier
	StartDate    string
	EndDate      string
	Value        float64
	Intermediate *IntermediateBenefits
	Premium      *PremiumBenefits
}

func validateBase(name, startDate, endDate string, value float64) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if startDate == "" {
		return fmt.Errorf("plan start date is required")
	}
	if endDate == "" {
		return fmt.Errorf("plan end date is required")
	}
	if value < 0 {
		return fmt.Errorf("plan value cannot be negative")
	}
	return nil
}

// NewBasicPlan builds a basico-tier plan.
func NewBasicPlan(id, name, startDate, endDate string, value float64) (*Plan, error) {
	if err := validateBase(name, startDate, endDate, value); err != nil {
		return nil, err
	}
	return &Plan{
		ID:        id,
		Name:      name,
		Tier:      TierBasico,
		StartDate: startDate,
		EndDate:   endDate,
		Value:     value,
	}, nil
}

// NewPlanRecord builds a bare base row for the given tier, without benefit
// data. Used by the per-table surface where extension rows are managed
// separately.
func NewPlanRecord(id, name string, tier Tier, startDate, endDate string, value float64) (*Plan, error) {
	if _, err := ParseTier(string(tier)); err != nil {
		return nil, err
	}
	if err := validateBase(name, startDate, endDate, value); err != nil {
		return nil, err
	}
	return &Plan{
		ID:        id,
		Name:      name,
		Tier:      tier,
		StartDate: startDate,
		EndDate:   endDate,
		Value:     value,
	}, nil
}

// NewIntermediatePlan builds an intermedio-tier plan with its benefits.
func NewIntermediatePlan(id, name, startDate, endDate string, value float64,
	benefits IntermediateBenefits) (*Plan, error) {

	if err := validateBase(name, startDate, endDate, value); err != nil {
		return nil, err
	}
	return &Plan{
		ID:           id,
		Name:         name,
		Tier:         TierIntermedio,
		StartDate:    startDate,
		EndDate:      endDate,
		Value:        value,
		Intermediate: &benefits,
	}, nil
}

// NewPremiumPlan builds a premium-tier plan carrying both benefit sets.
func NewPremiumPlan(id, name, startDate, endDate string, value float64,
	intermediate IntermediateBenefits, premium PremiumBenefits) (*Plan, error) {

	if err := validateBase(name, startDate, endDate, value); err != nil {
		return nil, err
	}
	if premium.SesionesVirtuales < 0 {
		return nil, fmt.Errorf("virtual session count cannot be negative")
	}
	return &Plan{
		ID:           id,
		Name:         name,
		Tier:         TierPremium,
		StartDate:    startDate,
		EndDate:      endDate,
		Value:        value,
		Intermediate: &intermediate,
		Premium:      &premium,
	}, nil
}

// IntermediateExtension is a raw intermediate row, addressed by the shared
// plan id. Exposed for the per-table CRUD surface.
type IntermediateExtension struct {
	ID       string
	Benefits IntermediateBenefits
}

// PremiumExtension is a raw premium row, addressed by the shared plan id.
type PremiumExtension struct {
	ID       string
	Benefits PremiumBenefits
}
