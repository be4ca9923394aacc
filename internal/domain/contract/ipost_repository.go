package contract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, id string) (*entity.Post, error)
	// GetPostsByUser retrieves every post owned by a user, newest first.
	GetPostsByUser(ctx context.Context, userID string) ([]entity.Post, error)
	// GetScheduledPosts retrieves a user's posts in the scheduled state,
	// ordered by scheduled date.
	GetScheduledPosts(ctx context.Context, userID string) ([]entity.Post, error)
	// UpdatePost replaces the stored post document and returns the result.
	UpdatePost(ctx context.Context, post *entity.Post) (*entity.Post, error)
	DeletePost(ctx context.Context, id string) error
}
