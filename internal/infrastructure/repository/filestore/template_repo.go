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

type FileTemplateRepository struct {
	store *store.Store
}

func NewFileTemplateRepository(s *store.Store) *FileTemplateRepository {
	return &FileTemplateRepository{store: s}
}

func (r *FileTemplateRepository) UpsertTemplate(_ context.Context, template *entity.Template) error {
	var existing entity.Template
	found, err := r.store.Get(templatesCollection, template.ID, &existing)
	if err != nil {
		return err
	}
	if found {
		template.CreatedAt = existing.CreatedAt
	}
	template.UpdatedAt = time.Now()
	if template.CreatedAt.IsZero() {
		template.CreatedAt = template.UpdatedAt
	}
	return r.store.Save(templatesCollection, template.ID, template)
}

func (r *FileTemplateRepository) GetTemplates(_ context.Context) ([]entity.Template, error) {
	docs, err := r.store.GetAll(templatesCollection)
	if err != nil {
		return nil, err
	}
	var templates []entity.Template
	for _, raw := range docs {
		var template entity.Template
		if err := decode(raw, &template); err != nil {
			continue
		}
		templates = append(templates, template)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

func (r *FileTemplateRepository) GetTemplateByID(_ context.Context, id string) (*entity.Template, error) {
	var template entity.Template
	found, err := r.store.Get(templatesCollection, id, &template)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("template %s: %w", id, apperror.ErrNotFound)
	}
	return &template, nil
}

func (r *FileTemplateRepository) GetTemplatesByCategory(ctx context.Context, category entity.TemplateCategory) ([]entity.Template, error) {
	all, err := r.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}
	var templates []entity.Template
	for _, template := range all {
		if template.Category == category {
			templates = append(templates, template)
		}
	}
	return templates, nil
}
