package filestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	store "github.com/brandkit-io/brandkit-backend/internal/infrastructure/filestore"
)

type FileIndustryRepository struct {
	store *store.Store
}

func NewFileIndustryRepository(s *store.Store) *FileIndustryRepository {
	return &FileIndustryRepository{store: s}
}

// UpsertIndustry keys taxonomy documents by industry name so repeated seeds
// replace instead of duplicate.
func (r *FileIndustryRepository) UpsertIndustry(ctx context.Context, industry *entity.Industry) error {
	existing, err := r.GetIndustryByName(ctx, industry.Name)
	if err == nil {
		industry.ID = existing.ID
		industry.CreatedAt = existing.CreatedAt
	} else if !apperror.IsNotFound(err) {
		return err
	}
	industry.UpdatedAt = time.Now()
	if industry.CreatedAt.IsZero() {
		industry.CreatedAt = industry.UpdatedAt
	}
	return r.store.Save(industriesCollection, industry.ID, industry)
}

func (r *FileIndustryRepository) GetIndustries(_ context.Context) ([]entity.Industry, error) {
	docs, err := r.store.GetAll(industriesCollection)
	if err != nil {
		return nil, err
	}
	var industries []entity.Industry
	for _, raw := range docs {
		var industry entity.Industry
		if err := decode(raw, &industry); err != nil {
			continue
		}
		industries = append(industries, industry)
	}
	sort.Slice(industries, func(i, j int) bool {
		return industries[i].Name < industries[j].Name
	})
	return industries, nil
}

func (r *FileIndustryRepository) GetIndustryByName(_ context.Context, name string) (*entity.Industry, error) {
	docs, err := r.store.GetAll(industriesCollection)
	if err != nil {
		return nil, err
	}
	for _, raw := range docs {
		var industry entity.Industry
		if err := decode(raw, &industry); err != nil {
			continue
		}
		if industry.Name == name {
			return &industry, nil
		}
	}
	return nil, fmt.Errorf("industry %s: %w", name, apperror.ErrNotFound)
}
