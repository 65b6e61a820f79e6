package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

// DeleteFeatureUseCase removes a single description feature by id.
type DeleteFeatureUseCase struct {
	featureRepo plan.FeatureRepository
	logger      logger.Interface
}

func NewDeleteFeatureUseCase(featureRepo plan.FeatureRepository, logger logger.Interface) *DeleteFeatureUseCase {
	return &DeleteFeatureUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *DeleteFeatureUseCase) Execute(ctx context.Context, featureID string) error {
	if featureID == "" {
		return apperrors.NewValidationError("feature id is required")
	}

	if err := uc.featureRepo.Delete(ctx, featureID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete feature", "error", err, "feature_id", featureID)
		return fmt.Errorf("failed to delete feature: %w", err)
	}

	uc.logger.Infow("feature deleted", "feature_id", featureID)
	return nil
}
