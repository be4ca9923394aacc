package dualstore

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

type DualTemplateRepository struct {
	primary  contract.ITemplateRepository
	fallback contract.ITemplateRepository
	logger   usecasecontract.IAppLogger
}

var _ contract.ITemplateRepository = (*DualTemplateRepository)(nil)

func NewDualTemplateRepository(primary, fallback contract.ITemplateRepository, logger usecasecontract.IAppLogger) *DualTemplateRepository {
	return &DualTemplateRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *DualTemplateRepository) UpsertTemplate(ctx context.Context, template *entity.Template) error {
	err := r.primary.UpsertTemplate(ctx, template)
	if shouldFallBack(err) {
		recordFallback(r.logger, "templates", "upsert", err)
		return r.fallback.UpsertTemplate(ctx, template)
	}
	return err
}

func (r *DualTemplateRepository) GetTemplates(ctx context.Context) ([]entity.Template, error) {
	templates, err := r.primary.GetTemplates(ctx)
	if shouldFallBack(err) {
		recordFallback(r.logger, "templates", "list", err)
		return r.fallback.GetTemplates(ctx)
	}
	return templates, err
}

func (r *DualTemplateRepository) GetTemplateByID(ctx context.Context, id string) (*entity.Template, error) {
	template, err := r.primary.GetTemplateByID(ctx, id)
	if shouldFallBack(err) {
		recordFallback(r.logger, "templates", "get", err)
		return r.fallback.GetTemplateByID(ctx, id)
	}
	return template, err
}

func (r *DualTemplateRepository) GetTemplatesByCategory(ctx context.Context, category entity.TemplateCategory) ([]entity.Template, error) {
	templates, err := r.primary.GetTemplatesByCategory(ctx, category)
	if shouldFallBack(err) {
		recordFallback(r.logger, "templates", "listByCategory", err)
		return r.fallback.GetTemplatesByCategory(ctx, category)
	}
	return templates, err
}
