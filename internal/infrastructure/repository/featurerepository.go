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

type FeatureRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFeatureRepository(gdb *gorm.DB, logger logger.Interface) plan.FeatureRepository {
	return &FeatureRepositoryImpl{db: gdb, logger: logger}
}

func (r *FeatureRepositoryImpl) List(ctx context.Context) ([]*plan.DescriptionFeature, error) {
	var rows []*models.DescriptionFeatureModel
	if err := db.GetTxFromContext(ctx, r.db).Order("created_at").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list features", "error", err)
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return toFeatureEntities(rows), nil
}

func (r *FeatureRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.DescriptionFeature, error) {
	var row models.DescriptionFeatureModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get feature", "error", err, "feature_id", id)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	return toFeatureEntity(&row), nil
}

func (r *FeatureRepositoryImpl) ListByTier(ctx context.Context, tier plan.Tier) ([]*plan.DescriptionFeature, error) {
	var rows []*models.DescriptionFeatureModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("tipo_plan = ?", tier.String()).Order("created_at").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list features by tier", "error", err, "tier", tier)
		return nil, fmt.Errorf("failed to list features by tier: %w", err)
	}
	return toFeatureEntities(rows), nil
}

func (r *FeatureRepositoryImpl) Create(ctx context.Context, f *plan.DescriptionFeature) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(toFeatureModel(f)).Error; err != nil {
		r.logger.Errorw("failed to create feature", "error", err, "feature_id", f.ID)
		return fmt.Errorf("failed to create feature: %w", err)
	}
	return nil
}

func (r *FeatureRepositoryImpl) Save(ctx context.Context, f *plan.DescriptionFeature) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.DescriptionFeatureModel{}).
		Where("id = ?", f.ID).
		Updates(map[string]interface{}{
			"tipo_plan":   f.TipoPlan.String(),
			"description": f.Description,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save feature", "error", result.Error, "feature_id", f.ID)
		return fmt.Errorf("failed to save feature: %w", result.Error)
	}
	return nil
}

func (r *FeatureRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.DescriptionFeatureModel{}, "id = ?", id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete feature", "error", result.Error, "feature_id", id)
		return fmt.Errorf("failed to delete feature: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("feature not found")
	}
	return nil
}

// DeleteByTier removes every feature carrying the tier label. Zero affected
// rows is not an error: a plan may have no features.
func (r *FeatureRepositoryImpl) DeleteByTier(ctx context.Context, tier plan.Tier) error {
	result := db.GetTxFromContext(ctx, r.db).
		Delete(&models.DescriptionFeatureModel{}, "tipo_plan = ?", tier.String())
	if result.Error != nil {
		r.logger.Errorw("failed to delete features by tier", "error", result.Error, "tier", tier)
		return fmt.Errorf("failed to delete features by tier: %w", result.Error)
	}
	return nil
}

func toFeatureModel(f *plan.DescriptionFeature) *models.DescriptionFeatureModel {
	return &models.DescriptionFeatureModel{
		ID:          f.ID,
		TipoPlan:    f.TipoPlan.String(),
		Description: f.Description,
	}
}

func toFeatureEntity(m *models.DescriptionFeatureModel) *plan.DescriptionFeature {
	return &plan.DescriptionFeature{
		ID:          m.ID,
		TipoPlan:    plan.Tier(m.TipoPlan),
		Description: m.Description,
	}
}

func toFeatureEntities(rows []*models.DescriptionFeatureModel) []*plan.DescriptionFeature {
	features := make([]*plan.DescriptionFeature, 0, len(rows))
	for _, row := range rows {
		features = append(features, toFeatureEntity(row))
	}
	return features
}
