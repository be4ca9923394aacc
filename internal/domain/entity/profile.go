package entity

import (
	"time"
)

// Default branding values applied when a profile is created without them.
const (
	DefaultLogo           = "no-logo.png"
	DefaultPrimaryColor   = "#000000"
	DefaultSecondaryColor = "#ffffff"
	DefaultAccentColor    = "#cccccc"
)

// MaxBusinessVoiceEntries caps how many voice descriptors a profile may carry.
const MaxBusinessVoiceEntries = 2

// BrandColors holds the three brand palette entries as hex strings.
type BrandColors struct {
	Primary   string `bson:"primary" json:"primary"`
	Secondary string `bson:"secondary" json:"secondary"`
	Accent    string `bson:"accent" json:"accent"`
}

// DefaultBrandColors returns the fixed fallback palette.
func DefaultBrandColors() BrandColors {
	return BrandColors{
		Primary:   DefaultPrimaryColor,
		Secondary: DefaultSecondaryColor,
		Accent:    DefaultAccentColor,
	}
}

// LocationType describes how the business is reachable.
type LocationType string

const (
	LocationTypePhysical    LocationType = "physical"
	LocationTypeOnline      LocationType = "online"
	LocationTypeServiceArea LocationType = "service-area"
)

// Location is the nested address block of a business profile.
type Location struct {
	Address string   `bson:"address,omitempty" json:"address,omitempty"`
	City    string   `bson:"city,omitempty" json:"city,omitempty"`
	Country string   `bson:"country,omitempty" json:"country,omitempty"`
	Cities  []string `bson:"cities,omitempty" json:"cities,omitempty"`
}

// ContactDetails holds customer-facing contact fields.
type ContactDetails struct {
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// BusinessProfile is the brand record a user configures once; it parameterizes
// all generated content. One profile per user.
type BusinessProfile struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	UserID          string         `bson:"user_id" json:"user"`
	BusinessName    string         `bson:"business_name" json:"businessName"`
	Industry        string         `bson:"industry" json:"industry"`
	Niche           string         `bson:"niche" json:"niche"`
	Logo            string         `bson:"logo" json:"logo"`
	BrandColors     BrandColors    `bson:"brand_colors" json:"brandColors"`
	BusinessVoice   []string       `bson:"business_voice" json:"businessVoice"`
	TargetAudience  []string       `bson:"target_audience" json:"targetAudience"`
	LocationType    LocationType   `bson:"location_type" json:"locationType"`
	Location        Location       `bson:"location,omitempty" json:"location,omitempty"`
	Website         string         `bson:"website,omitempty" json:"website,omitempty"`
	ContactDetails  ContactDetails `bson:"contact_details,omitempty" json:"contactDetails,omitempty"`
	SocialPlatforms []string       `bson:"social_platforms" json:"socialPlatforms"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at" json:"updated_at"`
}
