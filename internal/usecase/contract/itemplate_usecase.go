package usecasecontract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// ITemplateUseCase defines the template catalog operations. Init must complete
// before the catalog is served; it assembles the catalog from the stock-photo
// provider and falls back to the static built-in library.
type ITemplateUseCase interface {
	Init(ctx context.Context) error
	// Refresh drops the cached catalog and reassembles it from the providers.
	Refresh(ctx context.Context) error
	ListTemplates(ctx context.Context) ([]entity.Template, error)
	ListCategories(ctx context.Context) []entity.TemplateCategory
	GetTemplate(ctx context.Context, id string) (*entity.Template, error)
	ListByCategory(ctx context.Context, category entity.TemplateCategory) ([]entity.Template, error)
	SearchTemplates(ctx context.Context, query string) ([]entity.Template, error)
}
