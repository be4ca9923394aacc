package usecasecontract

import (
	"context"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// PostInput carries the writable fields of a post.
type PostInput struct {
	Content          string
	Headline         string
	CallToAction     string
	Hashtags         string
	ImageURL         string
	ImageDescription string
	Template         string
	Platform         entity.Platform
	ScheduledDate    *time.Time
}

// IPostUseCase defines the interface for post CRUD and lifecycle operations.
// Every read-by-id, update and delete checks ownership against the caller.
type IPostUseCase interface {
	CreatePost(ctx context.Context, userID string, input PostInput) (*entity.Post, error)
	GetPost(ctx context.Context, userID, postID string) (*entity.Post, error)
	ListPosts(ctx context.Context, userID string) ([]entity.Post, error)
	ListScheduledPosts(ctx context.Context, userID string) ([]entity.Post, error)
	UpdatePost(ctx context.Context, userID, postID string, input PostInput) (*entity.Post, error)
	UpdatePostStatus(ctx context.Context, userID, postID string, status entity.PostStatus, scheduledDate *time.Time) (*entity.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error
}
