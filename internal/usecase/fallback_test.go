package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func bakeryProfile() *entity.BusinessProfile {
	return &entity.BusinessProfile{
		BusinessName:    "Ann's Bakery",
		Industry:        "Food & Beverage",
		Niche:           "Bakeries",
		SocialPlatforms: []string{"instagram", "facebook"},
	}
}

func TestFallbackHashtags_CountAndPrefix(t *testing.T) {
	for _, n := range []int{1, 3, 5, 10, 30} {
		tags := fallbackHashtags(bakeryProfile(), "sourdough week", n)
		assert.LessOrEqual(t, len(tags), n)
		assert.NotEmpty(t, tags)
		for _, tag := range tags {
			assert.True(t, strings.HasPrefix(tag, "#"), "tag %q must start with #", tag)
			assert.NotEqual(t, "#", tag)
		}
	}
}

func TestFallbackHashtags_Deduplicates(t *testing.T) {
	tags := fallbackHashtags(bakeryProfile(), "bakery bakery Bakery", 10)
	seen := make(map[string]bool)
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
}

func TestFallbackPost_StructurallyComplete(t *testing.T) {
	for i := 0; i < 20; i++ {
		content := fallbackPost(bakeryProfile(), "sourdough week")
		assert.NotEmpty(t, content.Title)
		assert.NotEmpty(t, content.Content)
		assert.NotEmpty(t, content.Hashtags)
		assert.Contains(t, content.Title, "Ann's Bakery")
	}
}

func TestFallbackPost_NilProfile(t *testing.T) {
	content := fallbackPost(nil, "opening day")
	assert.NotEmpty(t, content.Title)
	assert.NotEmpty(t, content.Content)
}

func TestFallbackCreative_StructurallyComplete(t *testing.T) {
	for i := 0; i < 20; i++ {
		content := fallbackCreative(bakeryProfile(), "sourdough week", "instagram")
		assert.NotEmpty(t, content.Headline)
		assert.NotEmpty(t, content.MainText)
		assert.NotEmpty(t, content.CallToAction)
		assert.NotEmpty(t, content.Hashtags)
		assert.NotEmpty(t, content.ImageDescription)
	}
}

func TestFallbackCalendar(t *testing.T) {
	entries := fallbackCalendar(bakeryProfile(), 7)
	assert.Len(t, entries, 7)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	assert.Equal(t, tomorrow, entries[0].Date)
	for _, e := range entries {
		_, err := time.Parse("2006-01-02", e.Date)
		assert.NoError(t, err)
		assert.NotEmpty(t, e.Platform)
		assert.NotEmpty(t, e.ContentType)
		assert.NotEmpty(t, e.Topic)
	}
	// Platforms cycle through the profile's configured list.
	assert.Equal(t, "instagram", entries[0].Platform)
	assert.Equal(t, "facebook", entries[1].Platform)
}

func TestFallbackCalendar_DefaultSpan(t *testing.T) {
	entries := fallbackCalendar(nil, 0)
	assert.Len(t, entries, 7)
}

func TestFallbackBio(t *testing.T) {
	short := fallbackBio(bakeryProfile(), "twitter")
	long := fallbackBio(bakeryProfile(), "linkedin")
	assert.NotEmpty(t, short)
	assert.NotEmpty(t, long)
	assert.Less(t, len(short), len(long))
	assert.Contains(t, long, "Ann's Bakery")
}

func TestFallbackAudiences(t *testing.T) {
	audiences := fallbackAudiences("Food & Beverage", "Bakeries")
	assert.NotEmpty(t, audiences)
	assert.Contains(t, audiences[0], "bakeries")
}
