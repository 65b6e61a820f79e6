package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"plansvc/internal/domain/plan"
	"plansvc/internal/infrastructure/persistence/models"
	"plansvc/internal/shared/db"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

type PremiumRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPremiumRepository(gdb *gorm.DB, logger logger.Interface) plan.PremiumRepository {
	return &PremiumRepositoryImpl{db: gdb, logger: logger}
}

func (r *PremiumRepositoryImpl) List(ctx context.Context) ([]*plan.PremiumExtension, error) {
	var rows []*models.PlanPremiumModel
	if err := db.GetTxFromContext(ctx, r.db).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list premium extensions", "error", err)
		return nil, fmt.Errorf("failed to list premium extensions: %w", err)
	}

	exts := make([]*plan.PremiumExtension, 0, len(rows))
	for _, row := range rows {
		exts = append(exts, toPremiumEntity(row))
	}
	return exts, nil
}

func (r *PremiumRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.PremiumExtension, error) {
	var row models.PlanPremiumModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get premium extension", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get premium extension: %w", err)
	}
	return toPremiumEntity(&row), nil
}

func (r *PremiumRepositoryImpl) Create(ctx context.Context, e *plan.PremiumExtension) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(toPremiumModel(e)).Error; err != nil {
		r.logger.Errorw("failed to create premium extension", "error", err, "plan_id", e.ID)
		return fmt.Errorf("failed to create premium extension: %w", err)
	}
	return nil
}

func (r *PremiumRepositoryImpl) Save(ctx context.Context, e *plan.PremiumExtension) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanPremiumModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"sesiones_virtuales":    e.Benefits.SesionesVirtuales,
			"masajes":               e.Benefits.Masajes,
			"cuidado_pos_ejercicio": e.Benefits.CuidadoPosEjercicio,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save premium extension", "error", result.Error, "plan_id", e.ID)
		return fmt.Errorf("failed to save premium extension: %w", result.Error)
	}
	return nil
}

func (r *PremiumRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanPremiumModel{}, "id = ?", id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete premium extension", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete premium extension: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("premium extension not found")
	}
	return nil
}

func toPremiumModel(e *plan.PremiumExtension) *models.PlanPremiumModel {
	return &models.PlanPremiumModel{
		ID:                  e.ID,
		SesionesVirtuales:   e.Benefits.SesionesVirtuales,
		Masajes:             e.Benefits.Masajes,
		CuidadoPosEjercicio: e.Benefits.CuidadoPosEjercicio,
	}
}

func toPremiumEntity(m *models.PlanPremiumModel) *plan.PremiumExtension {
	return &plan.PremiumExtension{
		ID: m.ID,
		Benefits: plan.PremiumBenefits{
			SesionesVirtuales:   m.SesionesVirtuales,
			Masajes:             m.Masajes,
			CuidadoPosEjercicio: m.CuidadoPosEjercicio,
		},
	}
}
