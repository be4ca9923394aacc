package dto

// GenerateContentRequest is the payload for the content generation endpoints
// (POST /api/posts/generate and the ai-post variants).
type GenerateContentRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Platform    string `json:"platform"`
	ContentType string `json:"contentType"`
	Tone        string `json:"tone"`
}

// GenerateHashtagsRequest is the payload for hashtag generation.
type GenerateHashtagsRequest struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count"`
}

// GenerateCalendarRequest is the payload for content calendar generation.
type GenerateCalendarRequest struct {
	Days int `json:"days"`
}

// GenerateBioRequest is the payload for bio generation.
type GenerateBioRequest struct {
	Platform string `json:"platform"`
}
