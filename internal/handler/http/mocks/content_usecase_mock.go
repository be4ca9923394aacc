package mocks

import (
	"context"
	"fmt"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// MockContentUseCase is a mock implementation of the IContentUseCase interface
type MockContentUseCase struct {
	ShouldFailValidation bool
}

var _ usecasecontract.IContentUseCase = (*MockContentUseCase)(nil)

func NewMockContentUseCase() *MockContentUseCase {
	return &MockContentUseCase{}
}

func (m *MockContentUseCase) GeneratePost(ctx context.Context, profile *entity.BusinessProfile, params usecasecontract.ContentParams) (*entity.PostContent, error) {
	if m.ShouldFailValidation {
		return nil, fmt.Errorf("topic is required: %w", apperror.ErrValidation)
	}
	return &entity.PostContent{
		Title:    "Fresh bread, every day",
		Content:  "Come taste why mornings start here.",
		Hashtags: []string{"#bakery", "#fresh"},
	}, nil
}

func (m *MockContentUseCase) GenerateCreative(ctx context.Context, profile *entity.BusinessProfile, params usecasecontract.ContentParams) (*entity.CreativeContent, error) {
	if m.ShouldFailValidation {
		return nil, fmt.Errorf("topic is required: %w", apperror.ErrValidation)
	}
	return &entity.CreativeContent{
		Headline:         "Fresh bread, every day",
		MainText:         "Come taste why mornings start here.",
		CallToAction:     "Visit us today!",
		Hashtags:         []string{"#bakery", "#fresh"},
		ImageDescription: "A warm loaf on a wooden counter",
	}, nil
}

func (m *MockContentUseCase) GenerateHashtags(ctx context.Context, profile *entity.BusinessProfile, topic string, count int) ([]string, error) {
	return []string{"#bakery", "#fresh"}, nil
}

func (m *MockContentUseCase) GenerateCalendar(ctx context.Context, profile *entity.BusinessProfile, days int) ([]entity.CalendarEntry, error) {
	return []entity.CalendarEntry{{Date: "2026-01-02", Platform: "instagram", ContentType: "company-news", Topic: "Opening week", Description: "Kickoff"}}, nil
}

func (m *MockContentUseCase) GenerateBio(ctx context.Context, profile *entity.BusinessProfile, platform string) (string, error) {
	return "Your neighborhood bakery.", nil
}

func (m *MockContentUseCase) SuggestTargetAudiences(ctx context.Context, industry, niche string) ([]string, error) {
	return []string{"Local families"}, nil
}
