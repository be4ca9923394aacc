package usecasecontract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// ContentParams carries the caller-supplied knobs for content generation.
type ContentParams struct {
	Topic       string
	Platform    string
	ContentType string
	Tone        string
	Count       int
	Days        int
}

// IContentUseCase defines the AI content generation operations. Provider
// failures are absorbed into deterministic fallback content; only parameter
// validation errors surface to callers.
type IContentUseCase interface {
	// GeneratePost returns the simple {title, content, hashtags} envelope.
	GeneratePost(ctx context.Context, profile *entity.BusinessProfile, params ContentParams) (*entity.PostContent, error)
	// GenerateCreative returns the richer ai-post envelope.
	GenerateCreative(ctx context.Context, profile *entity.BusinessProfile, params ContentParams) (*entity.CreativeContent, error)
	GenerateHashtags(ctx context.Context, profile *entity.BusinessProfile, topic string, count int) ([]string, error)
	GenerateCalendar(ctx context.Context, profile *entity.BusinessProfile, days int) ([]entity.CalendarEntry, error)
	GenerateBio(ctx context.Context, profile *entity.BusinessProfile, platform string) (string, error)
	SuggestTargetAudiences(ctx context.Context, industry, niche string) ([]string, error)
}
