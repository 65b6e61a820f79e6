package usecases

import (
	"context"
	"fmt"

	"plansvc/internal/application/plan/dto"
	"plansvc/internal/domain/plan"
	apperrors "plansvc/internal/shared/errors"
	"plansvc/internal/shared/logger"
)

// IntermedioTableUseCase is the per-row surface over the intermediate
// extension table. Rows are keyed by the owning plan's id, which the caller
// supplies.
type IntermedioTableUseCase struct {
	repo   plan.IntermediateRepository
	logger logger.Interface
}

func NewIntermedioTableUseCase(repo plan.IntermediateRepository, logger logger.Interface) *IntermedioTableUseCase {
	return &IntermedioTableUseCase{repo: repo, logger: logger}
}

func (uc *IntermedioTableUseCase) List(ctx context.Context) ([]*dto.IntermedioDTO, error) {
	exts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToIntermedioDTOs(exts), nil
}

func (uc *IntermedioTableUseCase) Get(ctx context.Context, planID string) (*dto.IntermedioDTO, error) {
	ext, err := uc.repo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no intermediate extension with id %s", planID))
	}
	return dto.ToIntermedioDTO(ext), nil
}

func (uc *IntermedioTableUseCase) Create(ctx context.Context, planID string, benefits plan.IntermediateBenefits) (*dto.IntermedioDTO, error) {
	if planID == "" {
		return nil, apperrors.NewValidationError("plan id is required")
	}
	ext := &plan.IntermediateExtension{ID: planID, Benefits: benefits}
	if err := uc.repo.Create(ctx, ext); err != nil {
		return nil, err
	}
	return dto.ToIntermedioDTO(ext), nil
}

func (uc *IntermedioTableUseCase) Update(ctx context.Context, planID string, benefits plan.IntermediateBenefits) (*dto.IntermedioDTO, error) {
	existing, err := uc.repo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no intermediate extension with id %s", planID))
	}
	ext := &plan.IntermediateExtension{ID: planID, Benefits: benefits}
	if err := uc.repo.Save(ctx, ext); err != nil {
		return nil, err
	}
	return dto.ToIntermedioDTO(ext), nil
}

func (uc *IntermedioTableUseCase) Delete(ctx context.Context, planID string) error {
	if planID == "" {
		return apperrors.NewValidationError("plan id is required")
	}
	return uc.repo.Delete(ctx, planID)
}

// PremiumTableUseCase is the per-row surface over the premium extension table.
type PremiumTableUseCase struct {
	repo   plan.PremiumRepository
	logger logger.Interface
}

func NewPremiumTableUseCase(repo plan.PremiumRepository, logger logger.Interface) *PremiumTableUseCase {
	return &PremiumTableUseCase{repo: repo, logger: logger}
}

func (uc *PremiumTableUseCase) List(ctx context.Context) ([]*dto.PremiumDTO, error) {
	exts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToPremiumDTOs(exts), nil
}

func (uc *PremiumTableUseCase) Get(ctx context.Context, planID string) (*dto.PremiumDTO, error) {
	ext, err := uc.repo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no premium extension with id %s", planID))
	}
	return dto.ToPremiumDTO(ext), nil
}

func (uc *PremiumTableUseCase) Create(ctx context.Context, planID string, benefits plan.PremiumBenefits) (*dto.PremiumDTO, error) {
	if planID == "" {
		return nil, apperrors.NewValidationError("plan id is required")
	}
	if benefits.SesionesVirtuales < 0 {
		return nil, apperrors.NewValidationError("virtual session count cannot be negative")
	}
	ext := &plan.PremiumExtension{ID: planID, Benefits: benefits}
	if err := uc.repo.Create(ctx, ext); err != nil {
		return nil, err
	}
	return dto.ToPremiumDTO(ext), nil
}

func (uc *PremiumTableUseCase) Update(ctx context.Context, planID string, benefits plan.PremiumBenefits) (*dto.PremiumDTO, error) {
	existing, err := uc.repo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no premium extension with id %s", planID))
	}
	if benefits.SesionesVirtuales < 0 {
		return nil, apperrors.NewValidationError("virtual session count cannot be negative")
	}
	ext := &plan.PremiumExtension{ID: planID, Benefits: benefits}
	if err := uc.repo.Save(ctx, ext); err != nil {
		return nil, err
	}
	return dto.ToPremiumDTO(ext), nil
}

func (uc *PremiumTableUseCase) Delete(ctx context.Context, planID string) error {
	if planID == "" {
		return apperrors.NewValidationError("plan id is required")
	}
	return uc.repo.Delete(ctx, planID)
}
