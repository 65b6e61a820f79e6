package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

type UpdateFeatureCommand struct {
	ID          string
	TipoPlan    string
	Description string
}

// UpdateFeatureUseCase replaces the tier label and description of a feature.
type UpdateFeatureUseCase struct {
	featureRepo plan.FeatureRepository
	logger      logger.Interface
}

func NewUpdateFeatureUseCase(featureRepo plan.FeatureRepository, logger logger.Interface) *UpdateFeatureUseCase {
	return &UpdateFeatureUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *UpdateFeatureUseCase) Execute(ctx context.Context, cmd UpdateFeatureCommand) (*dto.FeatureDTO, error) {
	if cmd.ID == "" {
		return nil, apperrors.NewValidationError("feature id is required")
	}

	existing, err := uc.featureRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to fetch feature", "error", err, "feature_id", cmd.ID)
		return nil, fmt.Errorf("failed to fetch feature: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no feature with id %s", cmd.ID))
	}

	updated, err := plan.NewDescriptionFeature(cmd.ID, plan.Tier(cmd.TipoPlan), cmd.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.featureRepo.Save(ctx, updated); err != nil {
		uc.logger.Errorw("failed to save feature", "error", err, "feature_id", cmd.ID)
		return nil, fmt.Errorf("failed to save feature: %w", err)
	}

	return dto.ToFeatureDTO(updated), nil
}
