package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

type UpdateTieredPlanCommand struct {
	Tier      string
	ID        string
	Name      string
	StartDate string
	EndDate   string
	Value     float64

	MonitoreoTiempoReal    bool
	AlertasRiesgo          bool
	ComunicacionEntrenador bool

	SesionesVirtuales   int
	Masajes             bool
	CuidadoPosEjercicio bool
}

// UpdateTieredPlanUseCase replaces every field of a plan and its tier-owned
// extension rows. The id and tier never change.
type UpdateTieredPlanUseCase struct {
	planRepo       plan.Repository
	intermedioRepo plan.IntermediateRepository
	premiumRepo    plan.PremiumRepository
	txManager      TxManager
	logger         logger.Interface
}

func NewUpdateTieredPlanUseCase(
	planRepo plan.Repository,
	intermedioRepo plan.IntermediateRepository,
	premiumRepo plan.PremiumRepository,
	txManager TxManager,
	logger logger.Interface,
) *UpdateTieredPlanUseCase {
	return &UpdateTieredPlanUseCase{
		planRepo:       planRepo,
		intermedioRepo: intermedioRepo,
		premiumRepo:    premiumRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *UpdateTieredPlanUseCase) Execute(ctx context.Context, cmd UpdateTieredPlanCommand) (*dto.CompositePlanDTO, error) {
	tier, err := plan.ParseTier(cmd.Tier)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.ID == "" {
		return nil, apperrors.NewValidationError("plan id is required")
	}

	if err := verifyTieredRows(ctx, uc.planRepo, uc.intermedioRepo, uc.premiumRepo, tier, cmd.ID); err != nil {
		return nil, err
	}

	intermediate := plan.IntermediateBenefits{
		MonitoreoTiempoReal:    cmd.MonitoreoTiempoReal,
		AlertasRiesgo:          cmd.AlertasRiesgo,
		ComunicacionEntrenador: cmd.ComunicacionEntrenador,
	}
	premium := plan.PremiumBenefits{
		SesionesVirtuales:   cmd.SesionesVirtuales,
		Masajes:             cmd.Masajes,
		CuidadoPosEjercicio: cmd.CuidadoPosEjercicio,
	}

	var updated *plan.Plan
	switch tier {
	case plan.TierIntermedio:
		updated, err = plan.NewIntermediatePlan(cmd.ID, cmd.Name, cmd.StartDate, cmd.EndDate, cmd.Value, intermediate)
	case plan.TierPremium:
		updated, err = plan.NewPremiumPlan(cmd.ID, cmd.Name, cmd.StartDate, cmd.EndDate, cmd.Value, intermediate, premium)
	default:
		updated, err = plan.NewBasicPlan(cmd.ID, cmd.Name, cmd.StartDate, cmd.EndDate, cmd.Value)
	}
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.planRepo.Save(txCtx, updated); err != nil {
			return err
		}
		if tier.HasIntermediate() {
			ext := &plan.IntermediateExtension{ID: cmd.ID, Benefits: *updated.Intermediate}
			if err := uc.intermedioRepo.Save(txCtx, ext); err != nil {
				return err
			}
		}
		if tier.HasPremium() {
			ext := &plan.PremiumExtension{ID: cmd.ID, Benefits: *updated.Premium}
			if err := uc.premiumRepo.Save(txCtx, ext); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update tiered plan", "error", err, "plan_id", cmd.ID, "tier", tier)
		return nil, fmt.Errorf("failed to update tiered plan: %w", err)
	}

	uc.logger.Infow("tiered plan updated", "plan_id", cmd.ID, "tier", tier)
	return dto.ToCompositeDTO(updated, nil), nil
}

// verifyTieredRows checks that the base row exists, carries the requested
// tier, and that every extension row the tier owns is present.
func verifyTieredRows(
	ctx context.Context,
	planRepo plan.Repository,
	intermedioRepo plan.IntermediateRepository,
	premiumRepo plan.PremiumRepository,
	tier plan.Tier,
	planID string,
) error {
	existing, err := planRepo.GetByID(ctx, planID)
	if err != nil {
		return fmt.Errorf("failed to fetch plan: %w", err)
	}
	if existing == nil || existing.Tier != tier {
		return apperrors.NewNotFoundError(fmt.Sprintf("no plan of tier %s with id %s", tier, planID))
	}

	if tier.HasIntermediate() {
		ext, err := intermedioRepo.GetByID(ctx, planID)
		if err != nil {
			return fmt.Errorf("failed to fetch intermediate extension: %w", err)
		}
		if ext == nil {
			return apperrors.NewNotFoundError(fmt.Sprintf("intermediate extension missing for plan %s", planID))
		}
	}

	if tier.HasPremium() {
		ext, err := premiumRepo.GetByID(ctx, planID)
		if err != nil {
			return fmt.Errorf("failed to fetch premium extension: %w", err)
		}
		if ext == nil {
			return apperrors.NewNotFoundError(fmt.Sprintf("premium extension missing for plan %s", planID))
		}
	}

	return nil
}
