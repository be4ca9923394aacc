package dto

import "github.com/brandkit-io/brandkit-backend/internal/domain/entity"

// BrandColorsPayload mirrors entity.BrandColors on the wire.
type BrandColorsPayload struct {
	Primary   string `json:"primary" binding:"required"`
	Secondary string `json:"secondary" binding:"required"`
	Accent    string `json:"accent" binding:"required"`
}

func (p BrandColorsPayload) ToEntity() entity.BrandColors {
	return entity.BrandColors{
		Primary:   p.Primary,
		Secondary: p.Secondary,
		Accent:    p.Accent,
	}
}

// UpdateColorsRequest is the payload for PUT /api/branding/colors.
type UpdateColorsRequest struct {
	BrandColors BrandColorsPayload `json:"brandColors" binding:"required"`
}

// UpdateVoiceRequest is the payload for PUT /api/branding/voice.
type UpdateVoiceRequest struct {
	BusinessVoice []string `json:"businessVoice" binding:"required"`
}

// ColorsResponse is the payload of POST /api/branding/extract-colors.
type ColorsResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}
