package usecasecontract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// ITemplateCache caches the assembled template catalog.
type ITemplateCache interface {
	GetCatalog(ctx context.Context) ([]entity.Template, bool, error)
	SetCatalog(ctx context.Context, templates []entity.Template) error
	InvalidateCatalog(ctx context.Context) error
}
