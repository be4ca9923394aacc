package usecase

import (
	"context"
	"testing"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
)

func newProfileUseCaseFixture() *ProfileUseCase {
	uc, _ := newProfileUseCaseFixtureWithRepos()
	return uc
}

func newProfileUseCaseFixtureWithRepos() (*ProfileUseCase, *memIndustryRepo) {
	content := NewContentUseCase(&stubAIService{}, nopLogger{})
	industries := newMemIndustryRepo()
	uc := NewProfileUseCase(
		newMemProfileRepo(),
		industries,
		staticColorExtractor{colors: entity.BrandColors{Primary: "#112233", Secondary: "#445566", Accent: "#778899"}},
		&seqUUIDGen{},
		content,
		lenientValidator{},
		nopLogger{},
	)
	return uc, industries
}

// minimalProfileInput carries every required field so individual tests can
// break exactly one of them.
func minimalProfileInput() usecasecontract.ProfileUpsertInput {
	return usecasecontract.ProfileUpsertInput{
		BusinessName:    "Ann's Bakery",
		Industry:        "Food & Beverage",
		TargetAudience:  []string{"families"},
		SocialPlatforms: []string{"instagram"},
	}
}

func TestUpsertProfile_CreateAppliesDefaults(t *testing.T) {
	uc := newProfileUseCaseFixture()

	profile, err := uc.UpsertProfile(context.Background(), "user-1", usecasecontract.ProfileUpsertInput{
		BusinessName:    "Ann's Bakery",
		Industry:        "Food & Beverage",
		Niche:           "Bakeries",
		TargetAudience:  []string{"families"},
		LocationType:    entity.LocationTypePhysical,
		SocialPlatforms: []string{"instagram"},
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.DefaultLogo, profile.Logo)
	assert.Equal(t, entity.DefaultBrandColors(), profile.BrandColors)
	assert.Equal(t, "user-1", profile.UserID)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestUpsertProfile_SecondCallUpdatesInPlace(t *testing.T) {
	uc := newProfileUseCaseFixture()

	first, err := uc.UpsertProfile(context.Background(), "user-1", minimalProfileInput())
	assert.NoError(t, err)

	renamed := minimalProfileInput()
	renamed.BusinessName = "Ann's Artisan Bakery"
	second, err := uc.UpsertProfile(context.Background(), "user-1", renamed)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ann's Artisan Bakery", second.BusinessName)
}

func TestUpsertProfile_RequiredFields(t *testing.T) {
	uc := newProfileUseCaseFixture()

	noName := minimalProfileInput()
	noName.BusinessName = ""
	_, err := uc.UpsertProfile(context.Background(), "user-1", noName)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	noIndustry := minimalProfileInput()
	noIndustry.Industry = ""
	_, err = uc.UpsertProfile(context.Background(), "user-1", noIndustry)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpsertProfile_RequiresAudienceAndPlatforms(t *testing.T) {
	uc := newProfileUseCaseFixture()

	noAudience := minimalProfileInput()
	noAudience.TargetAudience = nil
	_, err := uc.UpsertProfile(context.Background(), "user-1", noAudience)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "targetAudience")

	noPlatforms := minimalProfileInput()
	noPlatforms.SocialPlatforms = nil
	_, err = uc.UpsertProfile(context.Background(), "user-1", noPlatforms)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "socialPlatforms")
}

func TestUpsertProfile_VoiceLimit(t *testing.T) {
	uc := newProfileUseCaseFixture()

	wordy := minimalProfileInput()
	wordy.BusinessVoice = []string{"warm", "playful", "edgy"}
	_, err := uc.UpsertProfile(context.Background(), "user-1", wordy)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpsertProfile_InvalidLocationType(t *testing.T) {
	uc := newProfileUseCaseFixture()

	orbital := minimalProfileInput()
	orbital.LocationType = "orbital"
	_, err := uc.UpsertProfile(context.Background(), "user-1", orbital)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGetIndustries_DefaultsBeforeSeeding(t *testing.T) {
	uc, industries := newProfileUseCaseFixtureWithRepos()

	listed, err := uc.GetIndustries(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, DefaultIndustries(), listed)

	// Once the store holds a taxonomy, it wins over the built-in list.
	seeded := &entity.Industry{ID: "ind-1", Name: "Food & Beverage", Niches: []entity.Niche{{Name: "Bakeries"}}}
	assert.NoError(t, industries.UpsertIndustry(context.Background(), seeded))

	listed, err = uc.GetIndustries(context.Background())
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, "Food & Beverage", listed[0].Name)
}

func TestUpdateBrandColors_Validates(t *testing.T) {
	uc := newProfileUseCaseFixture()

	_, err := uc.UpsertProfile(context.Background(), "user-1", minimalProfileInput())
	assert.NoError(t, err)

	_, err = uc.UpdateBrandColors(context.Background(), "user-1", entity.BrandColors{Primary: "red", Secondary: "#ffffff", Accent: "#cccccc"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	updated, err := uc.UpdateBrandColors(context.Background(), "user-1", entity.BrandColors{Primary: "#101010", Secondary: "#ffffff", Accent: "#cccccc"})
	assert.NoError(t, err)
	assert.Equal(t, "#101010", updated.BrandColors.Primary)
}

func TestUpdateBusinessVoice(t *testing.T) {
	uc := newProfileUseCaseFixture()

	_, err := uc.UpsertProfile(context.Background(), "user-1", minimalProfileInput())
	assert.NoError(t, err)

	_, err = uc.UpdateBusinessVoice(context.Background(), "user-1", []string{"warm", "playful", "edgy"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	updated, err := uc.UpdateBusinessVoice(context.Background(), "user-1", []string{"warm", "playful"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"warm", "playful"}, updated.BusinessVoice)
}

func TestExtractLogoColors_DefaultForMissingLogo(t *testing.T) {
	uc := newProfileUseCaseFixture()

	assert.Equal(t, entity.DefaultBrandColors(), uc.ExtractLogoColors(""))
	assert.Equal(t, entity.DefaultBrandColors(), uc.ExtractLogoColors(entity.DefaultLogo))
	assert.Equal(t, "#112233", uc.ExtractLogoColors("uploads/logo.png").Primary)
}
