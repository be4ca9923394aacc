package mocks

import (
	"context"
	"fmt"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// MockTemplateUseCase is a mock implementation of the ITemplateUseCase interface
type MockTemplateUseCase struct {
	TemplateNotFound bool

	MockTemplates []entity.Template
}

var _ usecasecontract.ITemplateUseCase = (*MockTemplateUseCase)(nil)

func NewMockTemplateUseCase() *MockTemplateUseCase {
	return &MockTemplateUseCase{
		MockTemplates: []entity.Template{
			{
				ID:          "product-showcase-static",
				Name:        "Product Showcase",
				Description: "Put a single product front and center.",
				Category:    entity.CategoryProductShowcase,
				Platforms:   []entity.Platform{entity.PlatformInstagram},
			},
		},
	}
}

func (m *MockTemplateUseCase) Init(ctx context.Context) error { return nil }

func (m *MockTemplateUseCase) Refresh(ctx context.Context) error { return nil }

func (m *MockTemplateUseCase) ListTemplates(ctx context.Context) ([]entity.Template, error) {
	return m.MockTemplates, nil
}

func (m *MockTemplateUseCase) ListCategories(ctx context.Context) []entity.TemplateCategory {
	return entity.TemplateCategories()
}

func (m *MockTemplateUseCase) GetTemplate(ctx context.Context, id string) (*entity.Template, error) {
	if m.TemplateNotFound {
		return nil, fmt.Errorf("template %s: %w", id, apperror.ErrNotFound)
	}
	return &m.MockTemplates[0], nil
}

func (m *MockTemplateUseCase) ListByCategory(ctx context.Context, category entity.TemplateCategory) ([]entity.Template, error) {
	return m.MockTemplates, nil
}

func (m *MockTemplateUseCase) SearchTemplates(ctx context.Context, query string) ([]entity.Template, error) {
	return m.MockTemplates, nil
}
