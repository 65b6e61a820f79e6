package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/application/plan/services"
	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

// GetCompositePlanUseCase returns the composite view of the plan occupying a
// tier. The tier singleton rule makes the tier label a unique key.
type GetCompositePlanUseCase struct {
	planRepo  plan.Repository
	assembler *services.Assembler
	logger    logger.Interface
}

func NewGetCompositePlanUseCase(
	planRepo plan.Repository,
	assembler *services.Assembler,
	logger logger.Interface,
) *GetCompositePlanUseCase {
	return &GetCompositePlanUseCase{
		planRepo:  planRepo,
		assembler: assembler,
		logger:    logger,
	}
}

func (uc *GetCompositePlanUseCase) Execute(ctx context.Context, tipoPlan string) (*dto.CompositePlanDTO, error) {
	tier, err := plan.ParseTier(tipoPlan)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	p, err := uc.planRepo.GetByTier(ctx, tier)
	if err != nil {
		uc.logger.Errorw("failed to fetch plan by tier", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to fetch plan by tier: %w", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no plan of tier %s", tier))
	}

	return uc.assembler.Assemble(ctx, p)
}
