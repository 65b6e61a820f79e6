package usecases

import (
	"context"
	"testing"

	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingPlan(id string, tier plan.Tier) *plan.Plan {
	return &plan.Plan{
		ID:        id,
		Name:      "old name",
		Tier:      tier,
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
		Value:     10,
	}
}

func TestUpdateTieredPlan_Premium(t *testing.T) {
	planRepo := new(mockPlanRepository)
	intermedioRepo := new(mockIntermedioRepository)
	premiumRepo := new(mockPremiumRepository)

	planRepo.On("GetByID", mock.Anything, "abc12345").Return(existingPlan("abc12345", plan.TierPremium), nil)
	intermedioRepo.On("GetByID", mock.Anything, "abc12345").Return(&plan.IntermediateExtension{ID: "abc12345"}, nil)
	premiumRepo.On("GetByID", mock.Anything, "abc12345").Return(&plan.PremiumExtension{ID: "abc12345"}, nil)
	planRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *plan.Plan) bool {
		return p.ID == "abc12345" && p.Name == "new name" && p.Tier == plan.TierPremium
	})).Return(nil)
	intermedioRepo.On("Save", mock.Anything, mock.AnythingOfType("*plan.IntermediateExtension")).Return(nil)
	premiumRepo.On("Save", mock.Anything, mock.MatchedBy(func(e *plan.PremiumExtension) bool {
		return e.Benefits.SesionesVirtuales == 2
	})).Return(nil)

	uc := NewUpdateTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, passthroughTxManager{}, quietLogger())

	result, err := uc.Execute(context.Background(), UpdateTieredPlanCommand{
		Tier:              "premium",
		ID:                "abc12345",
		Name:              "new name",
		StartDate:         "2026-01-01",
		EndDate:           "2026-12-31",
		Value:             150,
		SesionesVirtuales: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "new name", result.Name)
	require.NotNil(t, result.SesionesVirtuales)
	assert.Equal(t, 2, *result.SesionesVirtuales)

	planRepo.AssertExpectations(t)
	intermedioRepo.AssertExpectations(t)
	premiumRepo.AssertExpectations(t)
}

func TestUpdateTieredPlan_MissingBaseRow(t *testing.T) {
	planRepo := new(mockPlanRepository)
	planRepo.On("GetByID", mock.Anything, "missing1").Return(nil, nil)

	uc := NewUpdateTieredPlanUseCase(planRepo, new(mockIntermedioRepository), new(mockPremiumRepository), passthroughTxManager{}, quietLogger())

	_, err := uc.Execute(context.Background(), UpdateTieredPlanCommand{
		Tier:      "basico",
		ID:        "missing1",
		Name:      "name",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		Value:     10,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	planRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateTieredPlan_TierMismatch(t *testing.T) {
	planRepo := new(mockPlanRepository)
	planRepo.On("GetByID", mock.Anything, "abc12345").Return(existingPlan("abc12345", plan.TierBasico), nil)

	uc := NewUpdateTieredPlanUseCase(planRepo, new(mockIntermedioRepository), new(mockPremiumRepository), passthroughTxManager{}, quietLogger())

	_, err := uc.Execute(context.Background(), UpdateTieredPlanCommand{
		Tier:      "premium",
		ID:        "abc12345",
		Name:      "name",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		Value:     10,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateTieredPlan_MissingExtensionRow(t *testing.T) {
	planRepo := new(mockPlanRepository)
	intermedioRepo := new(mockIntermedioRepository)

	planRepo.On("GetByID", mock.Anything, "abc12345").Return(existingPlan("abc12345", plan.TierIntermedio), nil)
	intermedioRepo.On("GetByID", mock.Anything, "abc12345").Return(nil, nil)

	uc := NewUpdateTieredPlanUseCase(planRepo, intermedioRepo, new(mockPremiumRepository), passthroughTxManager{}, quietLogger())

	_, err := uc.Execute(context.Background(), UpdateTieredPlanCommand{
		Tier:      "intermedio",
		ID:        "abc12345",
		Name:      "name",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		Value:     10,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	planRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
