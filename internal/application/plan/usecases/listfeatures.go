package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/domain/plan"
	"plansvc/internal/shared/logger"
)

// ListFeaturesUseCase returns every description feature row.
type ListFeaturesUseCase struct {
	featureRepo plan.FeatureRepository
	logger      logger.Interface
}

func NewListFeaturesUseCase(featureRepo plan.FeatureRepository, logger logger.Interface) *ListFeaturesUseCase {
	return &ListFeaturesUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *ListFeaturesUseCase) Execute(ctx context.Context) ([]*dto.FeatureDTO, error) {
	features, err := uc.featureRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list features", "error", err)
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return dto.ToFeatureDTOs(features), nil
}
