package dualstore

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

type DualProfileRepository struct {
	primary  contract.IProfileRepository
	fallback contract.IProfileRepository
	logger   usecasecontract.IAppLogger
}

var _ contract.IProfileRepository = (*DualProfileRepository)(nil)

func NewDualProfileRepository(primary, fallback contract.IProfileRepository, logger usecasecontract.IAppLogger) *DualProfileRepository {
	return &DualProfileRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *DualProfileRepository) CreateProfile(ctx context.Context, profile *entity.BusinessProfile) error {
	err := r.primary.CreateProfile(ctx, profile)
	if shouldFallBack(err) {
		recordFallback(r.logger, "business-profiles", "create", err)
		return r.fallback.CreateProfile(ctx, profile)
	}
	return err
}

func (r *DualProfileRepository) GetProfileByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	profile, err := r.primary.GetProfileByID(ctx, id)
	if shouldFallBack(err) {
		recordFallback(r.logger, "business-profiles", "get", err)
		return r.fallback.GetProfileByID(ctx, id)
	}
	return profile, err
}

func (r *DualProfileRepository) GetProfileByUser(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	profile, err := r.primary.GetProfileByUser(ctx, userID)
	if shouldFallBack(err) {
		recordFallback(r.logger, "business-profiles", "getByUser", err)
		return r.fallback.GetProfileByUser(ctx, userID)
	}
	return profile, err
}

func (r *DualProfileRepository) UpdateProfile(ctx context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	updated, err := r.primary.UpdateProfile(ctx, profile)
	if shouldFallBack(err) {
		recordFallback(r.logger, "business-profiles", "update", err)
		return r.fallback.UpdateProfile(ctx, profile)
	}
	return updated, err
}
