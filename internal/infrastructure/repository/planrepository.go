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

// PlanRepositoryImpl persists base plan rows. Returned aggregates carry base
// fields only; the lifecycle use cases attach the extension data.
type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(gdb *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{db: gdb, logger: logger}
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*plan.Plan, error) {
	var rows []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Order("created_at").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]*plan.Plan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, toPlanEntity(row))
	}
	return plans, nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	var row models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by id", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return toPlanEntity(&row), nil
}

func (r *PlanRepositoryImpl) GetByTier(ctx context.Context, tier plan.Tier) (*plan.Plan, error) {
	var row models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("type_plan = ?", tier.String()).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by tier", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to get plan by tier: %w", err)
	}
	return toPlanEntity(&row), nil
}

func (r *PlanRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check plan existence: %w", err)
	}
	return count > 0, nil
}

func (r *PlanRepositoryImpl) ExistsByTier(ctx context.Context, tier plan.Tier) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("type_plan = ?", tier.String()).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tier existence: %w", err)
	}
	return count > 0, nil
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(toPlanModel(p)).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "plan_id", p.ID)
		return fmt.Errorf("failed to create plan: %w", err)
	}
	r.logger.Infow("plan created", "plan_id", p.ID, "tier", p.Tier)
	return nil
}

func (r *PlanRepositoryImpl) Save(ctx context.Context, p *plan.Plan) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":       p.Name,
			"type_plan":  p.Tier.String(),
			"start_date": p.StartDate,
			"end_date":   p.EndDate,
			"value":      p.Value,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save plan", "error", result.Error, "plan_id", p.ID)
		return fmt.Errorf("failed to save plan: %w", result.Error)
	}
	// RowsAffected may be 0 when the new values equal the stored ones.
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanModel{}, "id = ?", id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("plan not found")
	}
	r.logger.Infow("plan deleted", "plan_id", id)
	return nil
}

func toPlanModel(p *plan.Plan) *models.PlanModel {
	return &models.PlanModel{
		ID:        p.ID,
		Name:      p.Name,
		TypePlan:  p.Tier.String(),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Value:     p.Value,
	}
}

func toPlanEntity(m *models.PlanModel) *plan.Plan {
	return &plan.Plan{
		ID:        m.ID,
		Name:      m.Name,
		Tier:      plan.Tier(m.TypePlan),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Value:     m.Value,
	}
}
