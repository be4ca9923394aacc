package entity

import (
	"time"
)

// PostStatus is the lifecycle state of a post. Draft is the initial state and
// transitions happen only through the explicit status-update operation.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// ValidPostStatus reports whether s is a known lifecycle state.
func ValidPostStatus(s PostStatus) bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// Platform is the social network a post targets.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformGeneral   Platform = "general"
)

// ValidPlatform reports whether p is a supported platform.
func ValidPlatform(p Platform) bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformTwitter, PlatformLinkedIn, PlatformGeneral:
		return true
	}
	return false
}

// PostAnalytics tracks engagement counters for a post.
type PostAnalytics struct {
	Impressions int       `bson:"impressions" json:"impressions"`
	Clicks      int       `bson:"clicks" json:"clicks"`
	Shares      int       `bson:"shares" json:"shares"`
	LastUpdated time.Time `bson:"last_updated,omitempty" json:"lastUpdated,omitempty"`
}

// Post is a social media post belonging to a user and their business profile.
type Post struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	UserID           string        `bson:"user_id" json:"user"`
	ProfileID        string        `bson:"profile_id" json:"businessProfile"`
	Content          string        `bson:"content" json:"content"`
	Headline         string        `bson:"headline,omitempty" json:"headline,omitempty"`
	CallToAction     string        `bson:"call_to_action,omitempty" json:"callToAction,omitempty"`
	Hashtags         string        `bson:"hashtags,omitempty" json:"hashtags,omitempty"`
	ImageURL         string        `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	ImageDescription string        `bson:"image_description,omitempty" json:"imageDescription,omitempty"`
	Template         string        `bson:"template" json:"template"`
	Platform         Platform      `bson:"platform" json:"platform"`
	ScheduledDate    *time.Time    `bson:"scheduled_date,omitempty" json:"scheduledDate,omitempty"`
	Status           PostStatus    `bson:"status" json:"status"`
	Analytics        PostAnalytics `bson:"analytics" json:"analytics"`
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}
