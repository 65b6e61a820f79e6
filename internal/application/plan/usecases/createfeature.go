package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/id"
	"plansvc/internal/shared/logger"
)

type CreateFeatureCommand struct {
	TipoPlan    string
	Description string
}

// CreateFeatureUseCase adds a description feature to a tier label.
type CreateFeatureUseCase struct {
	featureRepo plan.FeatureRepository
	logger      logger.Interface
}

func NewCreateFeatureUseCase(featureRepo plan.FeatureRepository, logger logger.Interface) *CreateFeatureUseCase {
	return &CreateFeatureUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *CreateFeatureUseCase) Execute(ctx context.Context, cmd CreateFeatureCommand) (*dto.FeatureDTO, error) {
	featureID, err := id.NewUnique(ctx, func(ctx context.Context, candidate string) (bool, error) {
		existing, err := uc.featureRepo.GetByID(ctx, candidate)
		return existing != nil, err
	})
	if err != nil {
		uc.logger.Errorw("failed to generate feature id", "error", err)
		return nil, fmt.Errorf("failed to generate feature id: %w", err)
	}

	feature, err := plan.NewDescriptionFeature(featureID, plan.Tier(cmd.TipoPlan), cmd.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.featureRepo.Create(ctx, feature); err != nil {
		uc.logger.Errorw("failed to create feature", "error", err, "tier", cmd.TipoPlan)
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}

	uc.logger.Infow("feature created", "feature_id", featureID, "tier", feature.TipoPlan)
	return dto.ToFeatureDTO(feature), nil
}
