package usecasecontract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// ProfileUpsertInput carries the writable fields of a business profile.
// Fields left at their zero value fall back to schema defaults on create.
type ProfileUpsertInput struct {
	BusinessName    string
	Industry        string
	Niche           string
	LogoPath        string
	BrandColors     *entity.BrandColors
	BusinessVoice   []string
	TargetAudience  []string
	LocationType    entity.LocationType
	Location        entity.Location
	Website         string
	ContactDetails  entity.ContactDetails
	SocialPlatforms []string
}

// IProfileUseCase defines the interface for business profile operations.
type IProfileUseCase interface {
	GetProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error)
	// UpsertProfile creates the user's profile if absent, otherwise replaces
	// the listed fields.
	UpsertProfile(ctx context.Context, userID string, input ProfileUpsertInput) (*entity.BusinessProfile, error)
	GetIndustries(ctx context.Context) ([]entity.Industry, error)
	SuggestTargetAudiences(ctx context.Context, industry, niche string) ([]string, error)
	UpdateBrandColors(ctx context.Context, userID string, colors entity.BrandColors) (*entity.BusinessProfile, error)
	UpdateBusinessVoice(ctx context.Context, userID string, voice []string) (*entity.BusinessProfile, error)
	ExtractLogoColors(logoPath string) entity.BrandColors
}
