package contract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

type ITemplateRepository interface {
	// UpsertTemplate inserts the template or replaces the entry with the same ID.
	UpsertTemplate(ctx context.Context, template *entity.Template) error
	GetTemplates(ctx context.Context) ([]entity.Template, error)
	GetTemplateByID(ctx context.Context, id string) (*entity.Template, error)
	GetTemplatesByCategory(ctx context.Context, category entity.TemplateCategory) ([]entity.Template, error)
}
