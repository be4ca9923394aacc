package contract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

type IIndustryRepository interface {
	// UpsertIndustry inserts the industry or replaces the entry with the same
	// name. Industry names are unique in the taxonomy.
	UpsertIndustry(ctx context.Context, industry *entity.Industry) error
	GetIndustries(ctx context.Context) ([]entity.Industry, error)
	GetIndustryByName(ctx context.Context, name string) (*entity.Industry, error)
}
