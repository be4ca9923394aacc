package dualstore

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

type DualPostRepository struct {
	primary  contract.IPostRepository
	fallback contract.IPostRepository
	logger   usecasecontract.IAppLogger
}

var _ contract.IPostRepository = (*DualPostRepository)(nil)

func NewDualPostRepository(primary, fallback contract.IPostRepository, logger usecasecontract.IAppLogger) *DualPostRepository {
	return &DualPostRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *DualPostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	err := r.primary.CreatePost(ctx, post)
	if shouldFallBack(err) {
		recordFallback(r.logger, "posts", "create", err)
		return r.fallback.CreatePost(ctx, post)
	}
	return err
}

func (r *DualPostRepository) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	post, err := r.primary.GetPostByID(ctx, id)
	if shouldFallBack(err) {
		recordFallback(r.logger, "posts", "get", err)
		return r.fallback.GetPostByID(ctx, id)
	}
	return post, err
}

func (r *DualPostRepository) GetPostsByUser(ctx context.Context, userID string) ([]entity.Post, error) {
	posts, err := r.primary.GetPostsByUser(ctx, userID)
	if shouldFallBack(err) {
		recordFallback(r.logger, "posts", "listByUser", err)
		return r.fallback.GetPostsByUser(ctx, userID)
	}
	return posts, err
}

func (r *DualPostRepository) GetScheduledPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	posts, err := r.primary.GetScheduledPosts(ctx, userID)
	if shouldFallBack(err) {
		recordFallback(r.logger, "posts", "listScheduled", err)
		return r.fallback.GetScheduledPosts(ctx, userID)
	}
	return posts, err
}

func (r *DualPostRepository) UpdatePost(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	updated, err := r.primary.UpdatePost(ctx, post)
	if shouldFallBack(err) {
		recordFallback(r.logger, "posts", "update", err)
		return r.fallback.UpdatePost(ctx, post)
	}
	return updated, err
}

func (r *DualPostRepository) DeletePost(ctx context.Context, id string) error {
	err := r.primary.DeletePost(ctx, id)
	if shouldFallBack(err) {
		recordFallback(r.logger, "posts", "delete", err)
		return r.fallback.DeletePost(ctx, id)
	}
	return err
}
