package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// Deterministic fallback content, substituted whenever the AI provider is
// unconfigured, unreachable, or returns unusable output. Template selection is
// randomized but every result is structurally complete; these functions never
// fail.

var postTemplates = []struct {
	title   string
	content string
}{
	{
		title:   "Why %s is your go-to for %s",
		content: "At %s we live and breathe %s. Today we want to talk about %s and why it matters to you. Drop by and see the difference for yourself!",
	},
	{
		title:   "%s: our take on %s",
		content: "Here at %s, the %s world keeps moving and so do we. %s is on our minds this week, and we have put our own spin on it. Come and tell us what you think!",
	},
	{
		title:   "Fresh from %s: all about %s",
		content: "The team at %s has been hard at work. As a proud part of the %s community we are excited to share our thoughts on %s. Stay tuned for more!",
	},
}

var callToActions = []string{
	"Visit us today and see for yourself!",
	"Follow us for more updates like this.",
	"Get in touch, we would love to hear from you.",
	"Book your spot before it fills up!",
	"Share this with someone who needs it.",
}

var genericHashtags = []string{
	"smallbusiness", "supportlocal", "community", "quality", "love",
	"instagood", "newpost", "follow", "tips", "inspiration",
}

var calendarTopics = []string{
	"Behind the scenes at %s",
	"Customer spotlight",
	"A quick tip from the %s team",
	"This week's featured offer",
	"Meet the people behind %s",
	"Our favorite moments this month",
	"A look at what's coming next",
}

func businessNameOrDefault(profile *entity.BusinessProfile) string {
	if profile != nil && profile.BusinessName != "" {
		return profile.BusinessName
	}
	return "our business"
}

func industryOrDefault(profile *entity.BusinessProfile) string {
	if profile != nil && profile.Industry != "" {
		return profile.Industry
	}
	return "local business"
}

// fallbackPost synthesizes the simple {title, content, hashtags} envelope.
func fallbackPost(profile *entity.BusinessProfile, topic string) *entity.PostContent {
	name := businessNameOrDefault(profile)
	ind := industryOrDefault(profile)
	tpl := postTemplates[rand.Intn(len(postTemplates))]
	return &entity.PostContent{
		Title:    fmt.Sprintf(tpl.title, name, topic),
		Content:  fmt.Sprintf(tpl.content, name, ind, topic),
		Hashtags: fallbackHashtags(profile, topic, 5),
	}
}

// fallbackCreative synthesizes the richer ai-post envelope.
func fallbackCreative(profile *entity.BusinessProfile, topic, platform string) *entity.CreativeContent {
	name := businessNameOrDefault(profile)
	ind := industryOrDefault(profile)
	tpl := postTemplates[rand.Intn(len(postTemplates))]
	return &entity.CreativeContent{
		Headline:         fmt.Sprintf(tpl.title, name, topic),
		MainText:         fmt.Sprintf(tpl.content, name, ind, topic),
		CallToAction:     callToActions[rand.Intn(len(callToActions))],
		Hashtags:         fallbackHashtags(profile, topic, 5),
		ImageDescription: fmt.Sprintf("A bright, inviting photo representing %s for %s, styled for %s", topic, name, platform),
	}
}

// fallbackHashtags builds at most count tags from the topic, business name,
// industry and a curated generic list. Every tag carries the # prefix.
func fallbackHashtags(profile *entity.BusinessProfile, topic string, count int) []string {
	if count < 1 {
		count = 1
	}
	seen := make(map[string]bool)
	var tags []string
	add := func(raw string) {
		tag := slugifyTag(raw)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, "#"+tag)
	}
	for _, word := range strings.Fields(topic) {
		add(word)
	}
	if profile != nil {
		add(profile.BusinessName)
		add(profile.Industry)
		add(profile.Niche)
	}
	for _, g := range genericHashtags {
		add(g)
	}
	if len(tags) > count {
		tags = tags[:count]
	}
	return tags
}

// slugifyTag lowercases and strips everything that is not a letter or digit.
func slugifyTag(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fallbackCalendar plans one entry per day starting tomorrow, cycling through
// the profile's platforms and the template categories.
func fallbackCalendar(profile *entity.BusinessProfile, days int) []entity.CalendarEntry {
	if days < 1 {
		days = 7
	}
	name := businessNameOrDefault(profile)
	platforms := []string{string(entity.PlatformInstagram), string(entity.PlatformFacebook)}
	if profile != nil && len(profile.SocialPlatforms) > 0 {
		platforms = profile.SocialPlatforms
	}
	categories := entity.TemplateCategories()

	entries := make([]entity.CalendarEntry, 0, days)
	for i := 0; i < days; i++ {
		topic := calendarTopics[i%len(calendarTopics)]
		if strings.Contains(topic, "%s") {
			topic = fmt.Sprintf(topic, name)
		}
		entries = append(entries, entity.CalendarEntry{
			Date:        time.Now().AddDate(0, 0, i+1).Format("2006-01-02"),
			Platform:    platforms[i%len(platforms)],
			ContentType: string(categories[i%len(categories)]),
			Topic:       topic,
			Description: fmt.Sprintf("Planned %s content for %s.", categories[i%len(categories)], name),
		})
	}
	return entries
}

// fallbackBio writes a platform-appropriate bio. Short platforms get the
// compact variant.
func fallbackBio(profile *entity.BusinessProfile, platform string) string {
	name := businessNameOrDefault(profile)
	ind := industryOrDefault(profile)
	short := fmt.Sprintf("%s | %s done right. Come say hi!", name, ind)
	long := fmt.Sprintf(
		"%s is your friendly %s, proud to serve our community. We believe in quality, honesty and a personal touch in everything we do. Follow along for news, offers and a look behind the scenes.",
		name, strings.ToLower(ind),
	)
	switch strings.ToLower(platform) {
	case string(entity.PlatformTwitter), string(entity.PlatformInstagram):
		return short
	default:
		return long
	}
}

// fallbackAudiences suggests audience segments from the industry and niche.
func fallbackAudiences(industry, niche string) []string {
	base := []string{
		fmt.Sprintf("Local customers looking for %s", strings.ToLower(niche)),
		fmt.Sprintf("%s enthusiasts", industry),
		"Young professionals",
		"Families in the neighborhood",
		"Budget-conscious shoppers",
		"Repeat customers and regulars",
	}
	return base
}
