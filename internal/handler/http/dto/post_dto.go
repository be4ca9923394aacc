package dto

import (
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// PostRequest is the payload for creating or updating a post.
type PostRequest struct {
	Content          string     `json:"content" binding:"required"`
	Headline         string     `json:"headline"`
	CallToAction     string     `json:"callToAction"`
	Hashtags         string     `json:"hashtags"`
	ImageURL         string     `json:"imageUrl"`
	ImageDescription string     `json:"imageDescription"`
	Template         string     `json:"template"`
	Platform         string     `json:"platform"`
	ScheduledDate    *time.Time `json:"scheduledDate"`
}

func (r PostRequest) ToInput() usecasecontract.PostInput {
	return usecasecontract.PostInput{
		Content:          r.Content,
		Headline:         r.Headline,
		CallToAction:     r.CallToAction,
		Hashtags:         r.Hashtags,
		ImageURL:         r.ImageURL,
		ImageDescription: r.ImageDescription,
		Template:         r.Template,
		Platform:         entity.Platform(r.Platform),
		ScheduledDate:    r.ScheduledDate,
	}
}

// UpdateStatusRequest is the payload for PUT /api/posts/:id/status.
type UpdateStatusRequest struct {
	Status        string     `json:"status" binding:"required"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}
