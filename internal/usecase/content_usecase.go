package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/metrics"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// Providers often wrap JSON in prose or markdown fences; grab the outermost
// object or array and parse that.
var (
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	jsonArrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
)

const (
	maxHashtagCount  = 30
	maxCalendarDays  = 31
	defaultHashtags  = 5
	defaultCalSpan   = 7
	defaultPlatform  = "general"
)

// ContentUseCase generates branded social content. Every provider failure is
// absorbed into deterministic local templates; callers only ever see parameter
// validation errors.
type ContentUseCase struct {
	ai     usecasecontract.IAIService
	logger usecasecontract.IAppLogger
}

var _ usecasecontract.IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(ai usecasecontract.IAIService, logger usecasecontract.IAppLogger) *ContentUseCase {
	return &ContentUseCase{ai: ai, logger: logger}
}

func (uc *ContentUseCase) GeneratePost(ctx context.Context, profile *entity.BusinessProfile, params usecasecontract.ContentParams) (*entity.PostContent, error) {
	if strings.TrimSpace(params.Topic) == "" {
		return nil, fmt.Errorf("topic is required: %w", apperror.ErrValidation)
	}
	if params.Platform == "" {
		params.Platform = defaultPlatform
	}
	if !entity.ValidPlatform(entity.Platform(params.Platform)) {
		return nil, fmt.Errorf("invalid platform %q: %w", params.Platform, apperror.ErrValidation)
	}

	raw, ok := uc.askProvider(ctx, uc.postPrompt(profile, params))
	if ok {
		var content entity.PostContent
		if uc.parseObject(raw, &content) && content.Title != "" && content.Content != "" {
			content.Hashtags = normalizeHashtags(content.Hashtags)
			metrics.AIGenerations.WithLabelValues("post", "ai").Inc()
			return &content, nil
		}
		uc.logger.Warnf("post generation: provider response unusable, using fallback")
	}
	metrics.AIGenerations.WithLabelValues("post", "fallback").Inc()
	return fallbackPost(profile, params.Topic), nil
}

func (uc *ContentUseCase) GenerateCreative(ctx context.Context, profile *entity.BusinessProfile, params usecasecontract.ContentParams) (*entity.CreativeContent, error) {
	if strings.TrimSpace(params.Topic) == "" {
		return nil, fmt.Errorf("topic is required: %w", apperror.ErrValidation)
	}
	if params.Platform == "" {
		params.Platform = defaultPlatform
	}
	if !entity.ValidPlatform(entity.Platform(params.Platform)) {
		return nil, fmt.Errorf("invalid platform %q: %w", params.Platform, apperror.ErrValidation)
	}

	raw, ok := uc.askProvider(ctx, uc.creativePrompt(profile, params))
	if ok {
		var content entity.CreativeContent
		if uc.parseObject(raw, &content) && content.Headline != "" && content.MainText != "" {
			content.Hashtags = normalizeHashtags(content.Hashtags)
			if content.CallToAction == "" {
				content.CallToAction = callToActions[0]
			}
			metrics.AIGenerations.WithLabelValues("creative", "ai").Inc()
			return &content, nil
		}
		uc.logger.Warnf("creative generation: provider response unusable, using fallback")
	}
	metrics.AIGenerations.WithLabelValues("creative", "fallback").Inc()
	return fallbackCreative(profile, params.Topic, params.Platform), nil
}

func (uc *ContentUseCase) GenerateHashtags(ctx context.Context, profile *entity.BusinessProfile, topic string, count int) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic is required: %w", apperror.ErrValidation)
	}
	if count < 1 {
		count = defaultHashtags
	}
	if count > maxHashtagCount {
		return nil, fmt.Errorf("count must be at most %d: %w", maxHashtagCount, apperror.ErrValidation)
	}

	raw, ok := uc.askProvider(ctx, uc.hashtagPrompt(profile, topic, count))
	if ok {
		var tags []string
		if uc.parseArray(raw, &tags) && len(tags) > 0 {
			tags = normalizeHashtags(tags)
			if len(tags) > count {
				tags = tags[:count]
			}
			metrics.AIGenerations.WithLabelValues("hashtags", "ai").Inc()
			return tags, nil
		}
		uc.logger.Warnf("hashtag generation: provider response unusable, using fallback")
	}
	metrics.AIGenerations.WithLabelValues("hashtags", "fallback").Inc()
	return fallbackHashtags(profile, topic, count), nil
}

func (uc *ContentUseCase) GenerateCalendar(ctx context.Context, profile *entity.BusinessProfile, days int) ([]entity.CalendarEntry, error) {
	if days < 1 {
		days = defaultCalSpan
	}
	if days > maxCalendarDays {
		return nil, fmt.Errorf("days must be at most %d: %w", maxCalendarDays, apperror.ErrValidation)
	}

	raw, ok := uc.askProvider(ctx, uc.calendarPrompt(profile, days))
	if ok {
		var entries []entity.CalendarEntry
		if uc.parseArray(raw, &entries) && calendarUsable(entries) {
			metrics.AIGenerations.WithLabelValues("calendar", "ai").Inc()
			return entries, nil
		}
		uc.logger.Warnf("calendar generation: provider response unusable, using fallback")
	}
	metrics.AIGenerations.WithLabelValues("calendar", "fallback").Inc()
	return fallbackCalendar(profile, days), nil
}

func (uc *ContentUseCase) GenerateBio(ctx context.Context, profile *entity.BusinessProfile, platform string) (string, error) {
	if platform == "" {
		platform = defaultPlatform
	}
	if !entity.ValidPlatform(entity.Platform(platform)) {
		return "", fmt.Errorf("invalid platform %q: %w", platform, apperror.ErrValidation)
	}

	raw, ok := uc.askProvider(ctx, uc.bioPrompt(profile, platform))
	if ok {
		bio := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
		if bio != "" {
			metrics.AIGenerations.WithLabelValues("bio", "ai").Inc()
			return bio, nil
		}
		uc.logger.Warnf("bio generation: provider returned empty text, using fallback")
	}
	metrics.AIGenerations.WithLabelValues("bio", "fallback").Inc()
	return fallbackBio(profile, platform), nil
}

func (uc *ContentUseCase) SuggestTargetAudiences(ctx context.Context, industry, niche string) ([]string, error) {
	if strings.TrimSpace(industry) == "" || strings.TrimSpace(niche) == "" {
		return nil, fmt.Errorf("industry and niche are required: %w", apperror.ErrValidation)
	}

	raw, ok := uc.askProvider(ctx, uc.audiencePrompt(industry, niche))
	if ok {
		var audiences []string
		if uc.parseArray(raw, &audiences) && len(audiences) > 0 {
			metrics.AIGenerations.WithLabelValues("audiences", "ai").Inc()
			return audiences, nil
		}
		uc.logger.Warnf("audience suggestion: provider response unusable, using fallback")
	}
	metrics.AIGenerations.WithLabelValues("audiences", "fallback").Inc()
	return fallbackAudiences(industry, niche), nil
}

// askProvider calls the AI service when configured. The second return is false
// when the provider was skipped or failed.
func (uc *ContentUseCase) askProvider(ctx context.Context, prompt string) (string, bool) {
	if uc.ai == nil || !uc.ai.Configured() {
		return "", false
	}
	raw, err := uc.ai.GenerateContent(ctx, prompt)
	if err != nil {
		uc.logger.Warnf("ai provider call failed: %v", err)
		return "", false
	}
	return raw, true
}

func (uc *ContentUseCase) parseObject(raw string, out interface{}) bool {
	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return false
	}
	return json.Unmarshal([]byte(match), out) == nil
}

func (uc *ContentUseCase) parseArray(raw string, out interface{}) bool {
	match := jsonArrayPattern.FindString(raw)
	if match == "" {
		return false
	}
	return json.Unmarshal([]byte(match), out) == nil
}

// calendarUsable requires every entry to carry the fields the client renders.
func calendarUsable(entries []entity.CalendarEntry) bool {
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if e.Date == "" || e.Topic == "" {
			return false
		}
	}
	return true
}

// normalizeHashtags trims, deduplicates and guarantees the # prefix.
func normalizeHashtags(tags []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// brandContext renders the profile facts shared by every prompt.
func brandContext(profile *entity.BusinessProfile) string {
	if profile == nil {
		return "Business: a small local business."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Business: %s\n", profile.BusinessName)
	fmt.Fprintf(&b, "Industry: %s (niche: %s)\n", profile.Industry, profile.Niche)
	if len(profile.BusinessVoice) > 0 {
		fmt.Fprintf(&b, "Brand voice: %s\n", strings.Join(profile.BusinessVoice, ", "))
	}
	if len(profile.TargetAudience) > 0 {
		fmt.Fprintf(&b, "Target audience: %s\n", strings.Join(profile.TargetAudience, ", "))
	}
	return b.String()
}

func (uc *ContentUseCase) postPrompt(profile *entity.BusinessProfile, params usecasecontract.ContentParams) string {
	tone := params.Tone
	if tone == "" {
		tone = "friendly and engaging"
	}
	return fmt.Sprintf(`%s
Write a %s social media post about "%s" for %s in a %s tone.
Respond with JSON only, in this exact shape:
{"title": "...", "content": "...", "hashtags": ["#...", "#..."]}`,
		brandContext(profile), params.ContentType, params.Topic, params.Platform, tone)
}

func (uc *ContentUseCase) creativePrompt(profile *entity.BusinessProfile, params usecasecontract.ContentParams) string {
	tone := params.Tone
	if tone == "" {
		tone = "friendly and engaging"
	}
	return fmt.Sprintf(`%s
Create a complete %s post concept about "%s" for %s in a %s tone.
Respond with JSON only, in this exact shape:
{"headline": "...", "mainText": "...", "callToAction": "...", "hashtags": ["#..."], "imageDescription": "..."}`,
		brandContext(profile), params.ContentType, params.Topic, params.Platform, tone)
}

func (uc *ContentUseCase) hashtagPrompt(profile *entity.BusinessProfile, topic string, count int) string {
	return fmt.Sprintf(`%s
Suggest exactly %d effective hashtags about "%s".
Respond with a JSON array of strings only, each starting with #.`,
		brandContext(profile), count, topic)
}

func (uc *ContentUseCase) calendarPrompt(profile *entity.BusinessProfile, days int) string {
	return fmt.Sprintf(`%s
Plan a %d-day social media content calendar starting tomorrow.
Respond with a JSON array only, each element in this exact shape:
{"date": "YYYY-MM-DD", "platform": "...", "contentType": "...", "topic": "...", "description": "..."}`,
		brandContext(profile), days)
}

func (uc *ContentUseCase) bioPrompt(profile *entity.BusinessProfile, platform string) string {
	return fmt.Sprintf(`%s
Write a compelling %s bio for this business. Respond with the bio text only, no quotes and no commentary.`,
		brandContext(profile), platform)
}

func (uc *ContentUseCase) audiencePrompt(industry, niche string) string {
	return fmt.Sprintf(`Suggest 6 target audience segments for a business in the %s industry, niche %s.
Respond with a JSON array of short strings only.`, industry, niche)
}
