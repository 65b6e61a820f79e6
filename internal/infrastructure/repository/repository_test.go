package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"plansvc/internal/application/plan/usecases"
	"plansvc/internal/domain/plan"
	"plansvc/internal/infrastructure/persistence/models"
	"plansvc/internal/shared/db"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})           {}
func (nopLogger) Info(string, ...interface{})            {}
func (nopLogger) Warn(string, ...interface{})            {}
func (nopLogger) Error(string, ...interface{})           {}
func (nopLogger) Debugw(string, ...interface{})          {}
func (nopLogger) Infow(string, ...interface{})           {}
func (nopLogger) Warnw(string, ...interface{})           {}
func (nopLogger) Errorw(string, ...interface{})          {}
func (l nopLogger) With(...interface{}) logger.Interface { return l }
func (l nopLogger) Named(string) logger.Interface        { return l }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.PlanModel{},
		&models.PlanIntermedioModel{},
		&models.PlanPremiumModel{},
		&models.DescriptionFeatureModel{},
	))
	return gdb
}

func TestPlanRepository_RoundTrip(t *testing.T) {
	gdb := setupDB(t)
	repo := NewPlanRepository(gdb, nopLogger{})
	ctx := context.Background()

	created, err := plan.NewBasicPlan("abc12345", "Plan Basico", "02-02-2024", "02-08-2024", 49.9)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByID(ctx, "abc12345")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Plan Basico", got.Name)
	assert.Equal(t, plan.TierBasico, got.Tier)
	assert.Equal(t, "02-02-2024", got.StartDate)
	assert.Equal(t, "02-08-2024", got.EndDate)
	assert.Equal(t, 49.9, got.Value)

	byTier, err := repo.GetByTier(ctx, plan.TierBasico)
	require.NoError(t, err)
	require.NotNil(t, byTier)
	assert.Equal(t, "abc12345", byTier.ID)

	occupied, err := repo.ExistsByTier(ctx, plan.TierBasico)
	require.NoError(t, err)
	assert.True(t, occupied)
}

func TestPlanRepository_MissingRowIsNilNotError(t *testing.T) {
	gdb := setupDB(t)
	repo := NewPlanRepository(gdb, nopLogger{})
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "nothere1")
	require.NoError(t, err)
	assert.Nil(t, got)

	byTier, err := repo.GetByTier(ctx, plan.TierPremium)
	require.NoError(t, err)
	assert.Nil(t, byTier)
}

func TestPlanRepository_DeleteMissingIsNotFound(t *testing.T) {
	gdb := setupDB(t)
	repo := NewPlanRepository(gdb, nopLogger{})

	err := repo.Delete(context.Background(), "nothere1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestPlanRepository_SaveUpdatesEveryColumn(t *testing.T) {
	gdb := setupDB(t)
	repo := NewPlanRepository(gdb, nopLogger{})
	ctx := context.Background()

	created, err := plan.NewBasicPlan("abc12345", "old", "01-01-2024", "01-06-2024", 10)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, created))

	updated, err := plan.NewBasicPlan("abc12345", "new", "02-02-2024", "02-08-2024", 20)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.GetByID(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "02-02-2024", got.StartDate)
	assert.Equal(t, "02-08-2024", got.EndDate)
	assert.Equal(t, float64(20), got.Value)
}

func TestFeatureRepository_TierScopedQueries(t *testing.T) {
	gdb := setupDB(t)
	repo := NewFeatureRepository(gdb, nopLogger{})
	ctx := context.Background()

	for _, f := range []*plan.DescriptionFeature{
		{ID: "f1aaaaaa", TipoPlan: plan.TierPremium, Description: "acceso total"},
		{ID: "f2bbbbbb", TipoPlan: plan.TierPremium, Description: "entrenador dedicado"},
		{ID: "f3cccccc", TipoPlan: plan.TierBasico, Description: "acceso basico"},
	} {
		require.NoError(t, repo.Create(ctx, f))
	}

	premium, err := repo.ListByTier(ctx, plan.TierPremium)
	require.NoError(t, err)
	assert.Len(t, premium, 2)

	intermedio, err := repo.ListByTier(ctx, plan.TierIntermedio)
	require.NoError(t, err)
	assert.Empty(t, intermedio)

	require.NoError(t, repo.DeleteByTier(ctx, plan.TierPremium))

	premium, err = repo.ListByTier(ctx, plan.TierPremium)
	require.NoError(t, err)
	assert.Empty(t, premium)

	basico, err := repo.ListByTier(ctx, plan.TierBasico)
	require.NoError(t, err)
	assert.Len(t, basico, 1)

	// Deleting a tier with no features is not an error.
	require.NoError(t, repo.DeleteByTier(ctx, plan.TierPremium))
}

func TestDeleteCascade_RemovesEverythingThePlanOwns(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	log := nopLogger{}

	planRepo := NewPlanRepository(gdb, log)
	intermedioRepo := NewIntermedioRepository(gdb, log)
	premiumRepo := NewPremiumRepository(gdb, log)
	featureRepo := NewFeatureRepository(gdb, log)
	txManager := db.NewTransactionManager(gdb)

	createUC := usecases.NewCreateTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, txManager, log)
	created, err := createUC.Execute(ctx, usecases.CreateTieredPlanCommand{
		Tier:                "premium",
		Name:                "Plan Premium",
		StartDate:           "02-02-2024",
		EndDate:             "02-08-2024",
		Value:               129.9,
		MonitoreoTiempoReal: true,
		SesionesVirtuales:   4,
	})
	require.NoError(t, err)

	require.NoError(t, featureRepo.Create(ctx, &plan.DescriptionFeature{
		ID: "f1aaaaaa", TipoPlan: plan.TierPremium, Description: "acceso total",
	}))
	require.NoError(t, featureRepo.Create(ctx, &plan.DescriptionFeature{
		ID: "f2bbbbbb", TipoPlan: plan.TierBasico, Description: "acceso basico",
	}))

	deleteUC := usecases.NewDeleteTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, featureRepo, txManager, log)
	require.NoError(t, deleteUC.Execute(ctx, usecases.DeleteTieredPlanCommand{
		Tier: "premium",
		ID:   created.ID,
	}))

	base, err := planRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, base)

	intermedio, err := intermedioRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, intermedio)

	premium, err := premiumRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, premium)

	premiumFeatures, err := featureRepo.ListByTier(ctx, plan.TierPremium)
	require.NoError(t, err)
	assert.Empty(t, premiumFeatures)

	// Features of other tiers survive the cascade.
	basicoFeatures, err := featureRepo.ListByTier(ctx, plan.TierBasico)
	require.NoError(t, err)
	assert.Len(t, basicoFeatures, 1)
}

func TestCreateThenAssemble_RoundTripsEveryField(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	log := nopLogger{}

	planRepo := NewPlanRepository(gdb, log)
	intermedioRepo := NewIntermedioRepository(gdb, log)
	premiumRepo := NewPremiumRepository(gdb, log)
	_ = NewFeatureRepository(gdb, log)
	txManager := db.NewTransactionManager(gdb)

	createUC := usecases.NewCreateTieredPlanUseCase(planRepo, intermedioRepo, premiumRepo, txManager, log)
	created, err := createUC.Execute(ctx, usecases.CreateTieredPlanCommand{
		Tier:                   "premium",
		Name:                   "Plan Premium",
		StartDate:              "02-02-2024",
		EndDate:                "02-08-2024",
		Value:                  129.9,
		MonitoreoTiempoReal:    true,
		AlertasRiesgo:          true,
		ComunicacionEntrenador: true,
		SesionesVirtuales:      4,
		Masajes:                true,
		CuidadoPosEjercicio:    true,
	})
	require.NoError(t, err)

	stored, err := planRepo.GetByTier(ctx, plan.TierPremium)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, "02-02-2024", stored.StartDate)

	intermedio, err := intermedioRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, intermedio)
	assert.True(t, intermedio.Benefits.MonitoreoTiempoReal)
	assert.True(t, intermedio.Benefits.AlertasRiesgo)
	assert.True(t, intermedio.Benefits.ComunicacionEntrenador)

	premium, err := premiumRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, premium)
	assert.Equal(t, 4, premium.Benefits.SesionesVirtuales)
	assert.True(t, premium.Benefits.Masajes)
	assert.True(t, premium.Benefits.CuidadoPosEjercicio)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	log := nopLogger{}

	planRepo := NewPlanRepository(gdb, log)
	txManager := db.NewTransactionManager(gdb)

	created, err := plan.NewBasicPlan("abc12345", "Plan", "02-02-2024", "02-08-2024", 10)
	require.NoError(t, err)

	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := planRepo.Create(txCtx, created); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	got, err := planRepo.GetByID(ctx, "abc12345")
	require.NoError(t, err)
	assert.Nil(t, got)
}
