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

type PlanRecordInput struct {
	Name      string
	TypePlan  string
	StartDate string
	EndDate   string
	Value     float64
}

// PlanTableUseCase is the per-row surface over the base plan table. It does
// not enforce the tier singleton or touch extension rows; that is the tiered
// lifecycle's job.
type PlanTableUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewPlanTableUseCase(planRepo plan.Repository, logger logger.Interface) *PlanTableUseCase {
	return &PlanTableUseCase{planRepo: planRepo, logger: logger}
}

func (uc *PlanTableUseCase) List(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToPlanDTOs(plans), nil
}

func (uc *PlanTableUseCase) Get(ctx context.Context, planID string) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no plan with id %s", planID))
	}
	return dto.ToPlanDTO(p), nil
}

func (uc *PlanTableUseCase) Create(ctx context.Context, input PlanRecordInput) (*dto.PlanDTO, error) {
	planID, err := id.NewUnique(ctx, uc.planRepo.ExistsByID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan id: %w", err)
	}

	p, err := plan.NewPlanRecord(planID, input.Name, plan.Tier(input.TypePlan), input.StartDate, input.EndDate, input.Value)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPlanDTO(p), nil
}

func (uc *PlanTableUseCase) Update(ctx context.Context, planID string, input PlanRecordInput) (*dto.PlanDTO, error) {
	existing, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no plan with id %s", planID))
	}

	updated, err := plan.NewPlanRecord(planID, input.Name, plan.Tier(input.TypePlan), input.StartDate, input.EndDate, input.Value)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Save(ctx, updated); err != nil {
		return nil, err
	}
	return dto.ToPlanDTO(updated), nil
}

func (uc *PlanTableUseCase) Delete(ctx context.Context, planID string) error {
	if planID == "" {
		return apperrors.NewValidationError("plan id is required")
	}
	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete plan row", "error", err, "plan_id", planID)
		return err
	}
	return nil
}
