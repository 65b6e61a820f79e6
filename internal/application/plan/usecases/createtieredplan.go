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

// CreateTieredPlanCommand carries everything a tiered create may need; the
// benefit fields are read only for the tiers that own them.
type CreateTieredPlanCommand struct {
	Tier      string
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

// CreateTieredPlanUseCase creates a plan of the declared tier together with
// the extension rows that tier owns, enforcing the one-plan-per-tier rule.
type CreateTieredPlanUseCase struct {
	planRepo       plan.Repository
	intermedioRepo plan.IntermediateRepository
	premiumRepo    plan.PremiumRepository
	txManager      TxManager
	logger         logger.Interface
}

func NewCreateTieredPlanUseCase(
	planRepo plan.Repository,
	intermedioRepo plan.IntermediateRepository,
	premiumRepo plan.PremiumRepository,
	txManager TxManager,
	logger logger.Interface,
) *CreateTieredPlanUseCase {
	return &CreateTieredPlanUseCase{
		planRepo:       planRepo,
		intermedioRepo: intermedioRepo,
		premiumRepo:    premiumRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *CreateTieredPlanUseCase) Execute(ctx context.Context, cmd CreateTieredPlanCommand) (*dto.CompositePlanDTO, error) {
	tier, err := plan.ParseTier(cmd.Tier)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.planRepo.ExistsByTier(ctx, tier)
	if err != nil {
		uc.logger.Errorw("failed to check tier occupancy", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to check tier occupancy: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError(fmt.Sprintf("a plan of tier %s already exists", tier))
	}

	planID, err := id.NewUnique(ctx, uc.planRepo.ExistsByID)
	if err != nil {
		uc.logger.Errorw("failed to generate plan id", "error", err)
		return nil, fmt.Errorf("failed to generate plan id: %w", err)
	}

	newPlan, err := uc.buildPlan(tier, planID, cmd)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.planRepo.Create(txCtx, newPlan); err != nil {
			return err
		}
		if tier.HasIntermediate() {
			ext := &plan.IntermediateExtension{ID: planID, Benefits: *newPlan.Intermediate}
			if err := uc.intermedioRepo.Create(txCtx, ext); err != nil {
				return err
			}
		}
		if tier.HasPremium() {
			ext := &plan.PremiumExtension{ID: planID, Benefits: *newPlan.Premium}
			if err := uc.premiumRepo.Create(txCtx, ext); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist tiered plan", "error", err, "tier", tier, "plan_id", planID)
		return nil, fmt.Errorf("failed to persist tiered plan: %w", err)
	}

	uc.logger.Infow("tiered plan created", "plan_id", planID, "tier", tier)
	return dto.ToCompositeDTO(newPlan, nil), nil
}

func (uc *CreateTieredPlanUseCase) buildPlan(tier plan.Tier, planID string, cmd CreateTieredPlanCommand) (*plan.Plan, error) {
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

	switch tier {
	case plan.TierIntermedio:
		return plan.NewIntermediatePlan(planID, cmd.Name, cmd.StartDate, cmd.EndDate, cmd.Value, intermediate)
	case plan.TierPremium:
		return plan.NewPremiumPlan(planID, cmd.Name, cmd.StartDate, cmd.EndDate, cmd.Value, intermediate, premium)
	default:
		return plan.NewBasicPlan(planID, cmd.Name, cmd.StartDate, cmd.EndDate, cmd.Value)
	}
}
