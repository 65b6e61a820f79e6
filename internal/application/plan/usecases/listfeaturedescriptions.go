package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

// ListFeatureDescriptionsUseCase returns the description strings attached to a
// tier. A tier with no features yields an empty slice, not an error.
type ListFeatureDescriptionsUseCase struct {
	featureRepo plan.FeatureRepository
	logger      logger.Interface
}

func NewListFeatureDescriptionsUseCase(featureRepo plan.FeatureRepository, logger logger.Interface) *ListFeatureDescriptionsUseCase {
	return &ListFeatureDescriptionsUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *ListFeatureDescriptionsUseCase) Execute(ctx context.Context, tipoPlan string) ([]string, error) {
	tier, err := plan.ParseTier(tipoPlan)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	features, err := uc.featureRepo.ListByTier(ctx, tier)
	if err != nil {
		uc.logger.Errorw("failed to list features by tier", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to list features by tier: %w", err)
	}

	descriptions := make([]string, 0, len(features))
	for _, f := range features {
		descriptions = append(descriptions, f.Description)
	}
	return descriptions, nil
}
