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

type IntermedioRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewIntermedioRepository(gdb *gorm.DB, logger logger.Interface) plan.IntermediateRepository {
	return &IntermedioRepositoryImpl{db: gdb, logger: logger}
}

func (r *IntermedioRepositoryImpl) List(ctx context.Context) ([]*plan.IntermediateExtension, error) {
	var rows []*models.PlanIntermedioModel
	if err := db.GetTxFromContext(ctx, r.db).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list intermediate extensions", "error", err)
		return nil, fmt.Errorf("failed to list intermediate extensions: %w", err)
	}

	exts := make([]*plan.IntermediateExtension, 0, len(rows))
	for _, row := range rows {
		exts = append(exts, toIntermedioEntity(row))
	}
	return exts, nil
}

func (r *IntermedioRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.IntermediateExtension, error) {
	var row models.PlanIntermedioModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get intermediate extension", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get intermediate extension: %w", err)
	}
	return toIntermedioEntity(&row), nil
}

func (r *IntermedioRepositoryImpl) Create(ctx context.Context, e *plan.IntermediateExtension) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(toIntermedioModel(e)).Error; err != nil {
		r.logger.Errorw("failed to create intermediate extension", "error", err, "plan_id", e.ID)
		return fmt.Errorf("failed to create intermediate extension: %w", err)
	}
	return nil
}

func (r *IntermedioRepositoryImpl) Save(ctx context.Context, e *plan.IntermediateExtension) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanIntermedioModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"monitoreo_tiempo_real":   e.Benefits.MonitoreoTiempoReal,
			"alertas_riesgo":          e.Benefits.AlertasRiesgo,
			"comunicacion_entrenador": e.Benefits.ComunicacionEntrenador,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save intermediate extension", "error", result.Error, "plan_id", e.ID)
		return fmt.Errorf("failed to save intermediate extension: %w", result.Error)
	}
	return nil
}

func (r *IntermedioRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanIntermedioModel{}, "id = ?", id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete intermediate extension", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete intermediate extension: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("intermediate extension not found")
	}
	return nil
}

func toIntermedioModel(e *plan.IntermediateExtension) *models.PlanIntermedioModel {
	return &models.PlanIntermedioModel{
		ID:                     e.ID,
		MonitoreoTiempoReal:    e.Benefits.MonitoreoTiempoReal,
		AlertasRiesgo:          e.Benefits.AlertasRiesgo,
		ComunicacionEntrenador: e.Benefits.ComunicacionEntrenador,
	}
}

func toIntermedioEntity(m *models.PlanIntermedioModel) *plan.IntermediateExtension {
	return &plan.IntermediateExtension{
		ID: m.ID,
		Benefits: plan.IntermediateBenefits{
			MonitoreoTiempoReal:    m.MonitoreoTiempoReal,
			AlertasRiesgo:          m.AlertasRiesgo,
			ComunicacionEntrenador: m.ComunicacionEntrenador,
		},
	}
}
