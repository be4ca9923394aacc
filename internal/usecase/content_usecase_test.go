package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePost_ProviderJSON(t *testing.T) {
	ai := &stubAIService{
		configured: true,
		response: "Sure! Here is your post:\n```json\n" +
			`{"title":"Sourdough Week","content":"Seven days of crusty goodness.","hashtags":["#sourdough","bakerylife"]}` +
			"\n```",
	}
	uc := NewContentUseCase(ai, nopLogger{})

	content, err := uc.GeneratePost(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "sourdough week"})
	assert.NoError(t, err)
	assert.Equal(t, "Sourdough Week", content.Title)
	assert.Equal(t, "Seven days of crusty goodness.", content.Content)
	// Hashtags are normalized to carry the prefix.
	assert.Equal(t, []string{"#sourdough", "#bakerylife"}, content.Hashtags)
	assert.Equal(t, 1, ai.calls)
}

func TestGeneratePost_ProviderErrorFallsBack(t *testing.T) {
	ai := &stubAIService{configured: true, err: errors.New("rate limited")}
	uc := NewContentUseCase(ai, nopLogger{})

	content, err := uc.GeneratePost(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "sourdough week"})
	assert.NoError(t, err)
	assert.NotEmpty(t, content.Title)
	assert.NotEmpty(t, content.Content)
	assert.NotEmpty(t, content.Hashtags)
}

func TestGeneratePost_MalformedResponseFallsBack(t *testing.T) {
	ai := &stubAIService{configured: true, response: "I cannot help with that."}
	uc := NewContentUseCase(ai, nopLogger{})

	content, err := uc.GeneratePost(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "sourdough week"})
	assert.NoError(t, err)
	assert.NotEmpty(t, content.Title)
}

func TestGeneratePost_MissingRequiredFieldFallsBack(t *testing.T) {
	ai := &stubAIService{configured: true, response: `{"title":"","content":"","hashtags":[]}`}
	uc := NewContentUseCase(ai, nopLogger{})

	content, err := uc.GeneratePost(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "sourdough week"})
	assert.NoError(t, err)
	assert.NotEmpty(t, content.Title)
	assert.NotEmpty(t, content.Content)
}

func TestGeneratePost_UnconfiguredSkipsProvider(t *testing.T) {
	ai := &stubAIService{configured: false}
	uc := NewContentUseCase(ai, nopLogger{})

	content, err := uc.GeneratePost(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "sourdough week"})
	assert.NoError(t, err)
	assert.NotEmpty(t, content.Title)
	assert.Zero(t, ai.calls)
}

func TestGeneratePost_TopicRequired(t *testing.T) {
	uc := NewContentUseCase(&stubAIService{}, nopLogger{})

	_, err := uc.GeneratePost(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "   "})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGeneratePost_InvalidPlatform(t *testing.T) {
	uc := NewContentUseCase(&stubAIService{}, nopLogger{})

	_, err := uc.GeneratePost(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "x", Platform: "myspace"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGenerateCreative_ProviderJSON(t *testing.T) {
	ai := &stubAIService{
		configured: true,
		response:   `{"headline":"Warm from the oven","mainText":"Stop by before 9am.","callToAction":"Visit us!","hashtags":["#fresh"],"imageDescription":"bread on a rack"}`,
	}
	uc := NewContentUseCase(ai, nopLogger{})

	content, err := uc.GenerateCreative(context.Background(), bakeryProfile(), usecasecontract.ContentParams{Topic: "morning rush"})
	assert.NoError(t, err)
	assert.Equal(t, "Warm from the oven", content.Headline)
	assert.Equal(t, "Visit us!", content.CallToAction)
}

func TestGenerateHashtags_TruncatesToCount(t *testing.T) {
	ai := &stubAIService{
		configured: true,
		response:   `["#one","#two","#three","#four","#five","#six"]`,
	}
	uc := NewContentUseCase(ai, nopLogger{})

	tags, err := uc.GenerateHashtags(context.Background(), bakeryProfile(), "bread", 3)
	assert.NoError(t, err)
	assert.Len(t, tags, 3)
	for _, tag := range tags {
		assert.True(t, strings.HasPrefix(tag, "#"))
	}
}

func TestGenerateHashtags_FallbackRespectsCount(t *testing.T) {
	uc := NewContentUseCase(&stubAIService{}, nopLogger{})

	tags, err := uc.GenerateHashtags(context.Background(), bakeryProfile(), "bread", 4)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(tags), 4)
	for _, tag := range tags {
		assert.True(t, strings.HasPrefix(tag, "#"))
	}
}

func TestGenerateCalendar_ProviderArray(t *testing.T) {
	ai := &stubAIService{
		configured: true,
		response:   `Here you go: [{"date":"2026-09-01","platform":"instagram","contentType":"company-news","topic":"Opening","description":"Launch day"}]`,
	}
	uc := NewContentUseCase(ai, nopLogger{})

	entries, err := uc.GenerateCalendar(context.Background(), bakeryProfile(), 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "2026-09-01", entries[0].Date)
}

func TestGenerateCalendar_IncompleteEntriesFallBack(t *testing.T) {
	ai := &stubAIService{
		configured: true,
		response:   `[{"date":"","platform":"instagram","contentType":"","topic":"","description":""}]`,
	}
	uc := NewContentUseCase(ai, nopLogger{})

	entries, err := uc.GenerateCalendar(context.Background(), bakeryProfile(), 3)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	for _, e := range entries {
		assert.NotEmpty(t, e.Date)
		assert.NotEmpty(t, e.Topic)
	}
}

func TestGenerateBio_TrimsQuotes(t *testing.T) {
	ai := &stubAIService{configured: true, response: "\"Your neighborhood bakery.\"\n"}
	uc := NewContentUseCase(ai, nopLogger{})

	bio, err := uc.GenerateBio(context.Background(), bakeryProfile(), "instagram")
	assert.NoError(t, err)
	assert.Equal(t, "Your neighborhood bakery.", bio)
}

func TestSuggestTargetAudiences_Validation(t *testing.T) {
	uc := NewContentUseCase(&stubAIService{}, nopLogger{})

	_, err := uc.SuggestTargetAudiences(context.Background(), "", "Bakeries")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
