package usecases

import (
	"context"

	"plansvc/internal/domain/plan"
	"plansvc/internal/shared/logger"

	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Info(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Warn(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) With(keysAndValues ...interface{}) logger.Interface {
	args := m.Called(keysAndValues)
	if args.Get(0) == nil {
		return m
	}
	return args.Get(0).(logger.Interface)
}

func (m *mockLogger) Named(name string) logger.Interface {
	args := m.Called(name)
	if args.Get(0) == nil {
		return m
	}
	return args.Get(0).(logger.Interface)
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

// quietLogger accepts any log call without expectations. Tests that do not
// assert on logging use it to keep setup short.
func quietLogger() *mockLogger {
	l := new(mockLogger)
	l.On("Debugw", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Infow", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Warnw", mock.Anything, mock.Anything).Return().Maybe()
	l.On("Errorw", mock.Anything, mock.Anything).Return().Maybe()
	return l
}

// passthroughTxManager runs the function directly without opening a
// transaction, so repository mocks observe the calls in order.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.Plan), args.Error(1)
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *mockPlanRepository) GetByTier(ctx context.Context, tier plan.Tier) (*plan.Plan, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *mockPlanRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlanRepository) ExistsByTier(ctx context.Context, tier plan.Tier) (bool, error) {
	args := m.Called(ctx, tier)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPlanRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockIntermedioRepository struct {
	mock.Mock
}

func (m *mockIntermedioRepository) List(ctx context.Context) ([]*plan.IntermediateExtension, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.IntermediateExtension), args.Error(1)
}

func (m *mockIntermedioRepository) GetByID(ctx context.Context, id string) (*plan.IntermediateExtension, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.IntermediateExtension), args.Error(1)
}

func (m *mockIntermedioRepository) Create(ctx context.Context, e *plan.IntermediateExtension) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockIntermedioRepository) Save(ctx context.Context, e *plan.IntermediateExtension) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockIntermedioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPremiumRepository struct {
	mock.Mock
}

func (m *mockPremiumRepository) List(ctx context.Context) ([]*plan.PremiumExtension, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.PremiumExtension), args.Error(1)
}

func (m *mockPremiumRepository) GetByID(ctx context.Context, id string) (*plan.PremiumExtension, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.PremiumExtension), args.Error(1)
}

func (m *mockPremiumRepository) Create(ctx context.Context, e *plan.PremiumExtension) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockPremiumRepository) Save(ctx context.Context, e *plan.PremiumExtension) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockPremiumRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFeatureRepository struct {
	mock.Mock
}

func (m *mockFeatureRepository) List(ctx context.Context) ([]*plan.DescriptionFeature, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.DescriptionFeature), args.Error(1)
}

func (m *mockFeatureRepository) GetByID(ctx context.Context, id string) (*plan.DescriptionFeature, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.DescriptionFeature), args.Error(1)
}

func (m *mockFeatureRepository) ListByTier(ctx context.Context, tier plan.Tier) ([]*plan.DescriptionFeature, error) {
	args := m.Called(ctx, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.DescriptionFeature), args.Error(1)
}

func (m *mockFeatureRepository) Create(ctx context.Context, f *plan.DescriptionFeature) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFeatureRepository) Save(ctx context.Context, f *plan.DescriptionFeature) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFeatureRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFeatureRepository) DeleteByTier(ctx context.Context, tier plan.Tier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
