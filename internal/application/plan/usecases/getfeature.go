package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

// GetFeatureUseCase fetches a single description feature by id.
type GetFeatureUseCase struct {
	featureRepo plan.FeatureRepository
	logger      logger.Interface
}

func NewGetFeatureUseCase(featureRepo plan.FeatureRepository, logger logger.Interface) *GetFeatureUseCase {
	return &GetFeatureUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *GetFeatureUseCase) Execute(ctx context.Context, featureID string) (*dto.FeatureDTO, error) {
	if featureID == "" {
		return nil, apperrors.NewValidationError("feature id is required")
	}

	feature, err := uc.featureRepo.GetByID(ctx, featureID)
	if err != nil {
		uc.logger.Errorw("failed to fetch feature", "error", err, "feature_id", featureID)
		return nil, fmt.Errorf("failed to fetch feature: %w", err)
	}
	if feature == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no feature with id %s", featureID))
	}
	return dto.ToFeatureDTO(feature), nil
}
