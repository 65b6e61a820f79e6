package plan

import "context"

// Repository persists base plan rows. Lookups return nil (without error) when
// no row matches; Delete reports not-found on zero affected rows.
type Repository interface {
	List(ctx context.Context) ([]*Plan, error)
	GetByID(ctx context.Context, id string) (*Plan, error)
	GetByTier(ctx context.Context, tier Tier) (*Plan, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByTier(ctx context.Context, tier Tier) (bool, error)
	Create(ctx context.Context, p *Plan) error
	Save(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, id string) error
}

// IntermediateRepository persists intermediate extension rows.
type IntermediateRepository interface {
	List(ctx context.Context) ([]*IntermediateExtension, error)
	GetByID(ctx context.Context, id string) (*IntermediateExtension, error)
	Create(ctx context.Context, e *IntermediateExtension) error
	Save(ctx context.Context, e *IntermediateExtension) error
	Delete(ctx context.Context, id string) error
}

// PremiumRepository persists premium extension rows.
type PremiumRepository interface {
	List(ctx context.Context) ([]*PremiumExtension, error)
	GetByID(ctx context.Context, id string) (*PremiumExtension, error)
	Create(ctx context.Context, e *PremiumExtension) error
	Save(ctx context.Context, e *PremiumExtension) error
	Delete(ctx context.Context, id string) error
}

// FeatureRepository persists description features. DeleteByTier backs the
// delete cascade: removing a plan removes every feature sharing its tier.
type FeatureRepository interface {
	List(ctx context.Context) ([]*DescriptionFeature, error)
	GetByID(ctx context.Context, id string) (*DescriptionFeature, error)
	ListByTier(ctx context.Context, tier Tier) ([]*DescriptionFeature, error)
	Create(ctx context.Context, f *DescriptionFeature) error
	Save(ctx context.Context, f *DescriptionFeature) error
	Delete(ctx context.Context, id string) error
	DeleteByTier(ctx context.Context, tier Tier) error
}
