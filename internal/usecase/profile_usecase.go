package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// ProfileUseCase manages the one-per-user business profile and its branding.
type ProfileUseCase struct {
	profileRepo  contract.IProfileRepository
	industryRepo contract.IIndustryRepository
	extractor    contract.IColorExtractor
	uuidGen      contract.IUUIDGenerator
	content      usecasecontract.IContentUseCase
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

var _ usecasecontract.IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(
	profileRepo contract.IProfileRepository,
	industryRepo contract.IIndustryRepository,
	extractor contract.IColorExtractor,
	uuidGen contract.IUUIDGenerator,
	content usecasecontract.IContentUseCase,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:  profileRepo,
		industryRepo: industryRepo,
		extractor:    extractor,
		uuidGen:      uuidGen,
		content:      content,
		validator:    validator,
		logger:       logger,
	}
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	return uc.profileRepo.GetProfileByUser(ctx, userID)
}

func (uc *ProfileUseCase) UpsertProfile(ctx context.Context, userID string, input usecasecontract.ProfileUpsertInput) (*entity.BusinessProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	if strings.TrimSpace(input.BusinessName) == "" {
		return nil, fmt.Errorf("businessName is required: %w", apperror.ErrValidation)
	}
	if strings.TrimSpace(input.Industry) == "" {
		return nil, fmt.Errorf("industry is required: %w", apperror.ErrValidation)
	}
	if len(input.TargetAudience) == 0 {
		return nil, fmt.Errorf("targetAudience must not be empty: %w", apperror.ErrValidation)
	}
	if len(input.SocialPlatforms) == 0 {
		return nil, fmt.Errorf("socialPlatforms must not be empty: %w", apperror.ErrValidation)
	}
	if len(input.BusinessVoice) > entity.MaxBusinessVoiceEntries {
		return nil, fmt.Errorf("businessVoice accepts at most %d entries: %w", entity.MaxBusinessVoiceEntries, apperror.ErrValidation)
	}
	if input.LocationType != "" {
		switch input.LocationType {
		case entity.LocationTypePhysical, entity.LocationTypeOnline, entity.LocationTypeServiceArea:
		default:
			return nil, fmt.Errorf("invalid locationType %q: %w", input.LocationType, apperror.ErrValidation)
		}
	}
	if input.BrandColors != nil {
		if err := uc.validateColors(*input.BrandColors); err != nil {
			return nil, err
		}
	}

	existing, err := uc.profileRepo.GetProfileByUser(ctx, userID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	now := time.Now()
	profile := existing
	if profile == nil {
		profile = &entity.BusinessProfile{
			ID:        uc.uuidGen.NewUUID(),
			UserID:    userID,
			CreatedAt: now,
		}
	}
	profile.BusinessName = strings.TrimSpace(input.BusinessName)
	profile.Industry = strings.TrimSpace(input.Industry)
	profile.Niche = strings.TrimSpace(input.Niche)
	profile.BusinessVoice = input.BusinessVoice
	profile.TargetAudience = input.TargetAudience
	profile.Location = input.Location
	profile.Website = input.Website
	profile.ContactDetails = input.ContactDetails
	profile.SocialPlatforms = input.SocialPlatforms
	profile.UpdatedAt = now

	if input.LocationType != "" {
		profile.LocationType = input.LocationType
	} else if profile.LocationType == "" {
		profile.LocationType = entity.LocationTypePhysical
	}
	if input.LogoPath != "" {
		profile.Logo = input.LogoPath
	} else if profile.Logo == "" {
		profile.Logo = entity.DefaultLogo
	}
	if input.BrandColors != nil {
		profile.BrandColors = *input.BrandColors
	} else if profile.BrandColors == (entity.BrandColors{}) {
		profile.BrandColors = entity.DefaultBrandColors()
	}

	if existing == nil {
		if err := uc.profileRepo.CreateProfile(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		uc.logger.Infof("created business profile %s for user %s", profile.ID, userID)
		return profile, nil
	}
	updated, err := uc.profileRepo.UpdateProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

// GetIndustries serves the stored taxonomy, or the built-in default list while
// the industries collection is still empty (before the first seed run).
func (uc *ProfileUseCase) GetIndustries(ctx context.Context) ([]entity.Industry, error) {
	industries, err := uc.industryRepo.GetIndustries(ctx)
	if err != nil {
		return nil, err
	}
	if len(industries) == 0 {
		return DefaultIndustries(), nil
	}
	return industries, nil
}

// SuggestTargetAudiences prefers the generated suggestions; the content layer
// already guarantees a fallback list.
func (uc *ProfileUseCase) SuggestTargetAudiences(ctx context.Context, industry, niche string) ([]string, error) {
	if strings.TrimSpace(industry) == "" || strings.TrimSpace(niche) == "" {
		return nil, fmt.Errorf("industry and niche are required: %w", apperror.ErrValidation)
	}
	return uc.content.SuggestTargetAudiences(ctx, industry, niche)
}

func (uc *ProfileUseCase) UpdateBrandColors(ctx context.Context, userID string, colors entity.BrandColors) (*entity.BusinessProfile, error) {
	if err := uc.validateColors(colors); err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetProfileByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.BrandColors = colors
	profile.UpdatedAt = time.Now()
	return uc.profileRepo.UpdateProfile(ctx, profile)
}

func (uc *ProfileUseCase) UpdateBusinessVoice(ctx context.Context, userID string, voice []string) (*entity.BusinessProfile, error) {
	if len(voice) > entity.MaxBusinessVoiceEntries {
		return nil, fmt.Errorf("businessVoice accepts at most %d entries: %w", entity.MaxBusinessVoiceEntries, apperror.ErrValidation)
	}
	for _, v := range voice {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("businessVoice entries must not be empty: %w", apperror.ErrValidation)
		}
	}
	profile, err := uc.profileRepo.GetProfileByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.BusinessVoice = voice
	profile.UpdatedAt = time.Now()
	return uc.profileRepo.UpdateProfile(ctx, profile)
}

// ExtractLogoColors never fails; bad paths or undecodable images yield the
// default palette.
func (uc *ProfileUseCase) ExtractLogoColors(logoPath string) entity.BrandColors {
	if logoPath == "" || logoPath == entity.DefaultLogo {
		return entity.DefaultBrandColors()
	}
	return uc.extractor.ExtractColors(logoPath)
}

func (uc *ProfileUseCase) validateColors(colors entity.BrandColors) error {
	for _, c := range []string{colors.Primary, colors.Secondary, colors.Accent} {
		if err := uc.validator.ValidateHexColor(c); err != nil {
			return fmt.Errorf("invalid brand color %q: %w", c, apperror.ErrValidation)
		}
	}
	return nil
}
