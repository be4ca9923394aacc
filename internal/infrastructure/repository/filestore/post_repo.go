package filestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	store "github.com/brandkit-io/brandkit-backend/internal/infrastructure/filestore"
)

type FilePostRepository struct {
	store *store.Store
}

func NewFilePostRepository(s *store.Store) *FilePostRepository {
	return &FilePostRepository{store: s}
}

func (r *FilePostRepository) CreatePost(_ context.Context, post *entity.Post) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	return r.store.Save(postsCollection, post.ID, post)
}

func (r *FilePostRepository) GetPostByID(_ context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	found, err := r.store.Get(postsCollection, id, &post)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("post %s: %w", id, apperror.ErrNotFound)
	}
	return &post, nil
}

func (r *FilePostRepository) postsByUser(userID string) ([]entity.Post, error) {
	docs, err := r.store.GetAll(postsCollection)
	if err != nil {
		return nil, err
	}
	var posts []entity.Post
	for _, raw := range docs {
		var post entity.Post
		if err := decode(raw, &post); err != nil {
			continue
		}
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// GetPostsByUser retrieves every post owned by a user, newest first.
func (r *FilePostRepository) GetPostsByUser(_ context.Context, userID string) ([]entity.Post, error) {
	posts, err := r.postsByUser(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// GetScheduledPosts retrieves a user's scheduled posts ordered by scheduled date.
func (r *FilePostRepository) GetScheduledPosts(_ context.Context, userID string) ([]entity.Post, error) {
	all, err := r.postsByUser(userID)
	if err != nil {
		return nil, err
	}
	var posts []entity.Post
	for _, post := range all {
		if post.Status == entity.PostStatusScheduled {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i].ScheduledDate, posts[j].ScheduledDate
		if a == nil || b == nil {
			return b == nil
		}
		return a.Before(*b)
	})
	return posts, nil
}

func (r *FilePostRepository) UpdatePost(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	if _, err := r.GetPostByID(ctx, post.ID); err != nil {
		return nil, err
	}
	post.UpdatedAt = time.Now()
	if err := r.store.Save(postsCollection, post.ID, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *FilePostRepository) DeletePost(_ context.Context, id string) error {
	existed, err := r.store.Delete(postsCollection, id)
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("post %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}
