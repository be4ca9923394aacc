package entity

import (
	"time"
)

// TemplateCategory groups post templates by marketing purpose. Each category
// maps to a stock-photo search query when the catalog is assembled live.
type TemplateCategory string

const (
	CategoryProductShowcase   TemplateCategory = "product-showcase"
	CategoryTestimonial       TemplateCategory = "testimonial"
	CategoryIndustryTip       TemplateCategory = "industry-tip"
	CategoryPromotionalOffer  TemplateCategory = "promotional-offer"
	CategoryEventAnnouncement TemplateCategory = "event-announcement"
	CategoryCompanyNews       TemplateCategory = "company-news"
)

// TemplateCategories lists every known category in display order.
func TemplateCategories() []TemplateCategory {
	return []TemplateCategory{
		CategoryProductShowcase,
		CategoryTestimonial,
		CategoryIndustryTip,
		CategoryPromotionalOffer,
		CategoryEventAnnouncement,
		CategoryCompanyNews,
	}
}

// Template is a named visual/structural post layout. Catalog entries come from
// the static built-in library or from a stock-photo search; the latter are
// ephemeral aside from the seed sync into the stores.
type Template struct {
	ID          string           `bson:"_id,omitempty" json:"id"`
	Name        string           `bson:"name" json:"name"`
	Description string           `bson:"description" json:"description"`
	Category    TemplateCategory `bson:"category" json:"category"`
	Platforms   []Platform       `bson:"platforms" json:"platforms"`
	ImageURL    string           `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Attribution string           `bson:"attribution,omitempty" json:"attribution,omitempty"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `bson:"updated_at" json:"updated_at"`
}
