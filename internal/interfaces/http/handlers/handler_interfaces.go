package handlers

import (
	"context"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/application/plan/usecases"
	"plansvc/internal/domain/plan"
)

// Use case interfaces for the plan handlers - enables unit testing with mocks.

type createTieredPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTieredPlanCommand) (*dto.CompositePlanDTO, error)
}

type updateTieredPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTieredPlanCommand) (*dto.CompositePlanDTO, error)
}

type deleteTieredPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteTieredPlanCommand) error
}

type getCompositePlanUseCase interface {
	Execute(ctx context.Context, tipoPlan string) (*dto.CompositePlanDTO, error)
}

type listCompositePlansUseCase interface {
	Execute(ctx context.Context) ([]*dto.CompositePlanDTO, error)
}

type createFeatureUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateFeatureCommand) (*dto.FeatureDTO, error)
}

type updateFeatureUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateFeatureCommand) (*dto.FeatureDTO, error)
}

type deleteFeatureUseCase interface {
	Execute(ctx context.Context, featureID string) error
}

type getFeatureUseCase interface {
	Execute(ctx context.Context, featureID string) (*dto.FeatureDTO, error)
}

type listFeaturesUseCase interface {
	Execute(ctx context.Context) ([]*dto.FeatureDTO, error)
}

type listFeatureDescriptionsUseCase interface {
	Execute(ctx context.Context, tipoPlan string) ([]string, error)
}

type planTableUseCase interface {
	List(ctx context.Context) ([]*dto.PlanDTO, error)
	Get(ctx context.Context, planID string) (*dto.PlanDTO, error)
	Create(ctx context.Context, input usecases.PlanRecordInput) (*dto.PlanDTO, error)
	Update(ctx context.Context, planID string, input usecases.PlanRecordInput) (*dto.PlanDTO, error)
	Delete(ctx context.Context, planID string) error
}

type intermedioTableUseCase interface {
	List(ctx context.Context) ([]*dto.IntermedioDTO, error)
	Get(ctx context.Context, planID string) (*dto.IntermedioDTO, error)
	Create(ctx context.Context, planID string, benefits plan.IntermediateBenefits) (*dto.IntermedioDTO, error)
	Update(ctx context.Context, planID string, benefits plan.IntermediateBenefits) (*dto.IntermedioDTO, error)
	Delete(ctx context.Context, planID string) error
}

type premiumTableUseCase interface {
	List(ctx context.Context) ([]*dto.PremiumDTO, error)
	Get(ctx context.Context, planID string) (*dto.PremiumDTO, error)
	Create(ctx context.Context, planID string, benefits plan.PremiumBenefits) (*dto.PremiumDTO, error)
	Update(ctx context.Context, planID string, benefits plan.PremiumBenefits) (*dto.PremiumDTO, error)
	Delete(ctx context.Context, planID string) error
}
