package dualstore

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

type DualIndustryRepository struct {
	primary  contract.IIndustryRepository
	fallback contract.IIndustryRepository
	logger   usecasecontract.IAppLogger
}

var _ contract.IIndustryRepository = (*DualIndustryRepository)(nil)

func NewDualIndustryRepository(primary, fallback contract.IIndustryRepository, logger usecasecontract.IAppLogger) *DualIndustryRepository {
	return &DualIndustryRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *DualIndustryRepository) UpsertIndustry(ctx context.Context, industry *entity.Industry) error {
	err := r.primary.UpsertIndustry(ctx, industry)
	if shouldFallBack(err) {
		recordFallback(r.logger, "industries", "upsert", err)
		return r.fallback.UpsertIndustry(ctx, industry)
	}
	return err
}

func (r *DualIndustryRepository) GetIndustries(ctx context.Context) ([]entity.Industry, error) {
	industries, err := r.primary.GetIndustries(ctx)
	if shouldFallBack(err) {
		recordFallback(r.logger, "industries", "list", err)
		return r.fallback.GetIndustries(ctx)
	}
	return industries, err
}

func (r *DualIndustryRepository) GetIndustryByName(ctx context.Context, name string) (*entity.Industry, error) {
	industry, err := r.primary.GetIndustryByName(ctx, name)
	if shouldFallBack(err) {
		recordFallback(r.logger, "industries", "getByName", err)
		return r.fallback.GetIndustryByName(ctx, name)
	}
	return industry, err
}
