package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/application/plan/services"
	"plansvc/internal/domain/plan"
	"plansvc/internal/shared/logger"
)

// ListCompositePlansUseCase returns the composite view of every plan.
type ListCompositePlansUseCase struct {
	planRepo  plan.Repository
	assembler *services.Assembler
	logger    logger.Interface
}

func NewListCompositePlansUseCase(
	planRepo plan.Repository,
	assembler *services.Assembler,
	logger logger.Interface,
) *ListCompositePlansUseCase {
	return &ListCompositePlansUseCase{
		planRepo:  planRepo,
		assembler: assembler,
		logger:    logger,
	}
}

func (uc *ListCompositePlansUseCase) Execute(ctx context.Context) ([]*dto.CompositePlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return uc.assembler.AssembleAll(ctx, plans)
}
