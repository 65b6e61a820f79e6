package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

type DeleteTieredPlanCommand struct {
	Tier string
	ID   string
}

// DeleteTieredPlanUseCase removes a plan and everything it owns. Features
// sharing the plan's tier go first, then the extension rows, then the base
// row, all inside one transaction that aborts on the first failed step.
type DeleteTieredPlanUseCase struct {
	planRepo       plan.Repository
	intermedioRepo plan.IntermediateRepository
	premiumRepo    plan.PremiumRepository
	featureRepo    plan.FeatureRepository
	txManager      TxManager
	logger         logger.Interface
}

func NewDeleteTieredPlanUseCase(
	planRepo plan.Repository,
	intermedioRepo plan.IntermediateRepository,
	premiumRepo plan.PremiumRepository,
	featureRepo plan.FeatureRepository,
	txManager TxManager,
	logger logger.Interface,
) *DeleteTieredPlanUseCase {
	return &DeleteTieredPlanUseCase{
		planRepo:       planRepo,
		intermedioRepo: intermedioRepo,
		premiumRepo:    premiumRepo,
		featureRepo:    featureRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTieredPlanUseCase) Execute(ctx context.Context, cmd DeleteTieredPlanCommand) error {
	tier, err := plan.ParseTier(cmd.Tier)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if cmd.ID == "" {
		return apperrors.NewValidationError("plan id is required")
	}

	if err := verifyTieredRows(ctx, uc.planRepo, uc.intermedioRepo, uc.premiumRepo, tier, cmd.ID); err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.featureRepo.DeleteByTier(txCtx, tier); err != nil {
			return err
		}
		if tier.HasPremium() {
			if err := uc.premiumRepo.Delete(txCtx, cmd.ID); err != nil {
				return err
			}
		}
		if tier.HasIntermediate() {
			if err := uc.intermedioRepo.Delete(txCtx, cmd.ID); err != nil {
				return err
			}
		}
		return uc.planRepo.Delete(txCtx, cmd.ID)
	})
	if err != nil {
		if apperrors.GetAppError(err) != nil {
			return err
		}
		uc.logger.Errorw("failed to delete tiered plan", "error", err, "plan_id", cmd.ID, "tier", tier)
		return fmt.Errorf("failed to delete tiered plan: %w", err)
	}

	uc.logger.Infow("tiered plan deleted", "plan_id", cmd.ID, "tier", tier)
	return nil
}
