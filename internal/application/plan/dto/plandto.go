// Package dto defines the JSON shapes the plan API exposes. Field names match
// the public contract (typePlan, tipoPlan, monitoreoTiempoReal, ...).
package dto

import "plansvc/internal/domain/plan"

type PlanDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TypePlan  string  `json:"typePlan"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Value     float64 `json:"value"`
}

type IntermedioDTO struct {
	ID                     string `json:"id"`
	MonitoreoTiempoReal    bool   `json:"monitoreoTiempoReal"`
	AlertasRiesgo          bool   `json:"alertasRiesgo"`
	ComunicacionEntrenador bool   `json:"comunicacionEntrenador"`
}

type PremiumDTO struct {
	ID                  string `json:"id"`
	SesionesVirtuales   int    `json:"sesionesVirtuales"`
	Masajes             bool   `json:"masajes"`
	CuidadoPosEjercicio bool   `json:"cuidadoPosEjercicio"`
}

type FeatureDTO struct {
	ID          string `json:"id"`
	TipoPlan    string `json:"tipoPlan"`
	Description string `json:"description"`
}

// CompositePlanDTO is the denormalized view of a plan: base fields always,
// extension fields only when the tier owns them and the row exists, and the
// feature descriptions shared by the plan's tier.
type CompositePlanDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TypePlan  string  `json:"typePlan"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Value     float64 `json:"value"`

	MonitoreoTiempoReal    *bool `json:"monitoreoTiempoReal,omitempty"`
	AlertasRiesgo          *bool `json:"alertasRiesgo,omitempty"`
	ComunicacionEntrenador *bool `json:"comunicacionEntrenador,omitempty"`

	SesionesVirtuales   *int  `json:"sesionesVirtuales,omitempty"`
	Masajes             *bool `json:"masajes,omitempty"`
	CuidadoPosEjercicio *bool `json:"cuidadoPosEjercicio,omitempty"`

	Features []string `json:"features"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	return &PlanDTO{
		ID:        p.ID,
		Name:      p.Name,
		TypePlan:  p.Tier.String(),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Value:     p.Value,
	}
}

func ToPlanDTOs(plans []*plan.Plan) []*PlanDTO {
	out := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}

func ToIntermedioDTO(e *plan.IntermediateExtension) *IntermedioDTO {
	return &IntermedioDTO{
		ID:                     e.ID,
		MonitoreoTiempoReal:    e.Benefits.MonitoreoTiempoReal,
		AlertasRiesgo:          e.Benefits.AlertasRiesgo,
		ComunicacionEntrenador: e.Benefits.ComunicacionEntrenador,
	}
}

func ToIntermedioDTOs(exts []*plan.IntermediateExtension) []*IntermedioDTO {
	out := make([]*IntermedioDTO, 0, len(exts))
	for _, e := range exts {
		out = append(out, ToIntermedioDTO(e))
	}
	return out
}

func ToPremiumDTO(e *plan.PremiumExtension) *PremiumDTO {
	return &PremiumDTO{
		ID:                  e.ID,
		SesionesVirtuales:   e.Benefits.SesionesVirtuales,
		Masajes:             e.Benefits.Masajes,
		CuidadoPosEjercicio: e.Benefits.CuidadoPosEjercicio,
	}
}

func ToPremiumDTOs(exts []*plan.PremiumExtension) []*PremiumDTO {
	out := make([]*PremiumDTO, 0, len(exts))
	for _, e := range exts {
		out = append(out, ToPremiumDTO(e))
	}
	return out
}

func ToFeatureDTO(f *plan.DescriptionFeature) *FeatureDTO {
	return &FeatureDTO{
		ID:          f.ID,
		TipoPlan:    f.TipoPlan.String(),
		Description: f.Description,
	}
}

func ToFeatureDTOs(features []*plan.DescriptionFeature) []*FeatureDTO {
	out := make([]*FeatureDTO, 0, len(features))
	for _, f := range features {
		out = append(out, ToFeatureDTO(f))
	}
	return out
}

// ToCompositeDTO flattens a fully loaded aggregate into the composite view.
// Features is always a concrete slice in the output, never null.
func ToCompositeDTO(p *plan.Plan, features []string) *CompositePlanDTO {
	if features == nil {
		features = []string{}
	}
	view := &CompositePlanDTO{
		ID:        p.ID,
		Name:      p.Name,
		TypePlan:  p.Tier.String(),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Value:     p.Value,
		Features:  features,
	}
	if p.Intermediate != nil {
		view.MonitoreoTiempoReal = boolPtr(p.Intermediate.MonitoreoTiempoReal)
		view.AlertasRiesgo = boolPtr(p.Intermediate.AlertasRiesgo)
		view.ComunicacionEntrenador = boolPtr(p.Intermediate.ComunicacionEntrenador)
	}
	if p.Premium != nil {
		view.SesionesVirtuales = intPtr(p.Premium.SesionesVirtuales)
		view.Masajes = boolPtr(p.Premium.Masajes)
		view.CuidadoPosEjercicio = boolPtr(p.Premium.CuidadoPosEjercicio)
	}
	return view
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
