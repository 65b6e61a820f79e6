package usecases

import (
	"context"
	"errors"
	"testing"

	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteTieredPlan_PremiumCascadeOrder(t *testing.T) {
	planRepo := new(mockPlanRepository)
	intermedioRepo := new(mockIntermedioRepository)
	premiumRepo := new(mockPremiumRepository)
	featureRepo := new(mockFeatureRepository)

	planRepo.On("GetByID", mock.Anything, "abc12345").Return(existingPlan("abc12345", plan.TierPremium), nil)
	intermedioRepo.On("GetByID", mock.Anything, "abc12345").Return(&plan.IntermediateExtension{ID: "abc12345"}, nil)
	premiumRepo.On("GetByID", mock.Anything, "abc12345").Return(&plan.PremiumExtension{ID: "abc12345"}, nil)

	var order []string
	featureRepo.On("DeleteByTier", mock.Anything, plan.TierPremium).Run(func(mock.Arguments) {
		order = append(order, "features")
	}).Return(nil)
	premiumRepo.On("Delete", mock.Anything, "abc12345").Run(func(mock.Arguments) {
		order = append(order, "premium")
	}).Return(nil)
	intermedioRepo.On("Delete", mock.Anything, "abc12345").Run(func(mock.Arguments) {
		order = append(order, "intermedio")
	}).Return(nil)
	planRepo.On("Delete", mock.Anything, "abc12345").Run(func(mock.Arguments) {
		order = append(order, "base")
	}).Return(nil)

	uc := NewDeleteTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, featureRepo, passthroughTxManager{}, quietLogger())

	err := uc.Execute(context.Background(), DeleteTieredPlanCommand{Tier: "premium", ID: "abc12345"})

	require.NoError(t, err)
	assert.Equal(t, []string{"features", "premium", "intermedio", "base"}, order)
}

func TestDeleteTieredPlan_BasicoSkipsExtensions(t *testing.T) {
	planRepo := new(mockPlanRepository)
	intermedioRepo := new(mockIntermedioRepository)
	premiumRepo := new(mockPremiumRepository)
	featureRepo := new(mockFeatureRepository)

	planRepo.On("GetByID", mock.Anything, "abc12345").Return(existingPlan("abc12345", plan.TierBasico), nil)
	featureRepo.On("DeleteByTier", mock.Anything, plan.TierBasico).Return(nil)
	planRepo.On("Delete", mock.Anything, "abc12345").Return(nil)

	uc := NewDeleteTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, featureRepo, passthroughTxManager{}, quietLogger())

	err := uc.Execute(context.Background(), DeleteTieredPlanCommand{Tier: "basico", ID: "abc12345"})

	require.NoError(t, err)
	intermedioRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	premiumRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteTieredPlan_AbortsOnExtensionFailure(t *testing.T) {
	planRepo := new(mockPlanRepository)
	intermedioRepo := new(mockIntermedioRepository)
	premiumRepo := new(mockPremiumRepository)
	featureRepo := new(mockFeatureRepository)

	planRepo.On("GetByID", mock.Anything, "abc12345").Return(existingPlan("abc12345", plan.TierPremium), nil)
	intermedioRepo.On("GetByID", mock.Anything, "abc12345").Return(&plan.IntermediateExtension{ID: "abc12345"}, nil)
	premiumRepo.On("GetByID", mock.Anything, "abc12345").Return(&plan.PremiumExtension{ID: "abc12345"}, nil)

	featureRepo.On("DeleteByTier", mock.Anything, plan.TierPremium).Return(nil)
	premiumRepo.On("Delete", mock.Anything, "abc12345").Return(errors.New("database gone"))

	uc := NewDeleteTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, featureRepo, passthroughTxManager{}, quietLogger())

	err := uc.Execute(context.Background(), DeleteTieredPlanCommand{Tier: "premium", ID: "abc12345"})

	require.Error(t, err)
	intermedioRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	planRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteTieredPlan_MissingPlan(t *testing.T) {
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)

	planRepo.On("GetByID", mock.Anything, "missing1").Return(nil, nil)

	uc := NewDeleteTieredPlanUseCase(planRepo, new(mockIntermedioRepository), new(mockPremiumRepository), featureRepo, passthroughTxManager{}, quietLogger())

	err := uc.Execute(context.Background(), DeleteTieredPlanCommand{Tier: "basico", ID: "missing1"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	featureRepo.AssertNotCalled(t, "DeleteByTier", mock.Anything, mock.Anything)
}
