// Package services holds application services shared by the plan use cases.
package services

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/domain/plan"
	"plansvc/internal/shared/logger"
)

// Assembler builds the denormalized composite view of a plan: base fields,
// the tier-owned extension fields, and the feature descriptions for the tier.
type Assembler struct {
	intermedioRepo plan.IntermediateRepository
	premiumRepo    plan.PremiumRepository
	featureRepo    plan.FeatureRepository
	logger         logger.Interface
}

func NewAssembler(
	intermedioRepo plan.IntermediateRepository,
	premiumRepo plan.PremiumRepository,
	featureRepo plan.FeatureRepository,
	logger logger.Interface,
) *Assembler {
	return &Assembler{
		intermedioRepo: intermedioRepo,
		premiumRepo:    premiumRepo,
		featureRepo:    featureRepo,
		logger:         logger,
	}
}

// Assemble resolves the extension rows and features for p. A missing extension
// row is tolerated: its fields are omitted from the view.
func (a *Assembler) Assemble(ctx context.Context, p *plan.Plan) (*dto.CompositePlanDTO, error) {
	loaded := *p

	if p.Tier.HasIntermediate() && loaded.Intermediate == nil {
		ext, err := a.intermedioRepo.GetByID(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load intermediate extension: %w", err)
		}
		if ext != nil {
			loaded.Intermediate = &ext.Benefits
		}
	}

	if p.Tier.HasPremium() && loaded.Premium == nil {
		ext, err := a.premiumRepo.GetByID(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load premium extension: %w", err)
		}
		if ext != nil {
			loaded.Premium = &ext.Benefits
		}
	}

	features, err := a.featureRepo.ListByTier(ctx, p.Tier)
	if err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	descriptions := make([]string, 0, len(features))
	for _, f := range features {
		descriptions = append(descriptions, f.Description)
	}

	return dto.ToCompositeDTO(&loaded, descriptions), nil
}

// AssembleAll assembles every plan, preserving input order.
func (a *Assembler) AssembleAll(ctx context.Context, plans []*plan.Plan) ([]*dto.CompositePlanDTO, error) {
	views := make([]*dto.CompositePlanDTO, 0, len(plans))
	for _, p := range plans {
		view, err := a.Assemble(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
