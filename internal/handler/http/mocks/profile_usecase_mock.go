package mocks

import (
	"context"
	"fmt"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// MockProfileUseCase is a mock implementation of the IProfileUseCase interface
type MockProfileUseCase struct {
	ShouldFailGetProfile bool
	ShouldFailUpsert     bool
	ShouldFailUpdate     bool
	ProfileNotFound      bool
	RejectBusinessVoice  bool

	MockProfile   entity.BusinessProfile
	MockAudiences []string
}

var _ usecasecontract.IProfileUseCase = (*MockProfileUseCase)(nil)

func NewMockProfileUseCase() *MockProfileUseCase {
	return &MockProfileUseCase{
		MockProfile: entity.BusinessProfile{
			ID:           "mock-profile-id",
			UserID:       "mock-user-id",
			BusinessName: "Ann's Bakery",
			Industry:     "Food & Beverage",
			Niche:        "Bakeries",
			Logo:         entity.DefaultLogo,
			BrandColors:  entity.DefaultBrandColors(),
			LocationType: entity.LocationTypePhysical,
		},
		MockAudiences: []string{"Local families", "Morning commuters"},
	}
}

func (m *MockProfileUseCase) GetProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	if m.ProfileNotFound {
		return nil, fmt.Errorf("profile for user %s: %w", userID, apperror.ErrNotFound)
	}
	if m.ShouldFailGetProfile {
		return nil, fmt.Errorf("store unavailable")
	}
	return &m.MockProfile, nil
}

func (m *MockProfileUseCase) UpsertProfile(ctx context.Context, userID string, input usecasecontract.ProfileUpsertInput) (*entity.BusinessProfile, error) {
	if m.RejectBusinessVoice || len(input.BusinessVoice) > entity.MaxBusinessVoiceEntries {
		return nil, fmt.Errorf("businessVoice accepts at most %d entries: %w", entity.MaxBusinessVoiceEntries, apperror.ErrValidation)
	}
	if len(input.TargetAudience) == 0 {
		return nil, fmt.Errorf("targetAudience must not be empty: %w", apperror.ErrValidation)
	}
	if len(input.SocialPlatforms) == 0 {
		return nil, fmt.Errorf("socialPlatforms must not be empty: %w", apperror.ErrValidation)
	}
	if m.ShouldFailUpsert {
		return nil, fmt.Errorf("store unavailable")
	}
	profile := m.MockProfile
	profile.BusinessName = input.BusinessName
	profile.Industry = input.Industry
	profile.Niche = input.Niche
	profile.TargetAudience = input.TargetAudience
	profile.SocialPlatforms = input.SocialPlatforms
	if input.LocationType != "" {
		profile.LocationType = input.LocationType
	}
	if input.BrandColors != nil {
		profile.BrandColors = *input.BrandColors
	}
	if input.LogoPath != "" {
		profile.Logo = input.LogoPath
	}
	return &profile, nil
}

func (m *MockProfileUseCase) GetIndustries(ctx context.Context) ([]entity.Industry, error) {
	return []entity.Industry{{ID: "ind-1", Name: "Food & Beverage", Niches: []entity.Niche{{Name: "Bakeries"}}}}, nil
}

func (m *MockProfileUseCase) SuggestTargetAudiences(ctx context.Context, industry, niche string) ([]string, error) {
	return m.MockAudiences, nil
}

func (m *MockProfileUseCase) UpdateBrandColors(ctx context.Context, userID string, colors entity.BrandColors) (*entity.BusinessProfile, error) {
	if m.ShouldFailUpdate {
		return nil, fmt.Errorf("store unavailable")
	}
	profile := m.MockProfile
	profile.BrandColors = colors
	return &profile, nil
}

func (m *MockProfileUseCase) UpdateBusinessVoice(ctx context.Context, userID string, voice []string) (*entity.BusinessProfile, error) {
	if len(voice) > entity.MaxBusinessVoiceEntries {
		return nil, fmt.Errorf("businessVoice accepts at most %d entries: %w", entity.MaxBusinessVoiceEntries, apperror.ErrValidation)
	}
	profile := m.MockProfile
	profile.BusinessVoice = voice
	return &profile, nil
}

func (m *MockProfileUseCase) ExtractLogoColors(logoPath string) entity.BrandColors {
	return entity.DefaultBrandColors()
}
