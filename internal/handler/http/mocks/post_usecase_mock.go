package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// MockPostUseCase is a mock implementation of the IPostUseCase interface
type MockPostUseCase struct {
	ShouldFailCreate bool
	PostNotFound     bool
	// OwnerID lets ownership tests simulate a post held by someone else.
	OwnerID string

	MockPost entity.Post
}

var _ usecasecontract.IPostUseCase = (*MockPostUseCase)(nil)

func NewMockPostUseCase() *MockPostUseCase {
	return &MockPostUseCase{
		OwnerID: "mock-user-id",
		MockPost: entity.Post{
			ID:       "mock-post-id",
			UserID:   "mock-user-id",
			Content:  "Fresh sourdough every morning.",
			Platform: entity.PlatformInstagram,
			Status:   entity.PostStatusDraft,
		},
	}
}

func (m *MockPostUseCase) checkAccess(userID, postID string) error {
	if m.PostNotFound {
		return fmt.Errorf("post %s: %w", postID, apperror.ErrNotFound)
	}
	if userID != m.OwnerID {
		return fmt.Errorf("post %s does not belong to caller: %w", postID, apperror.ErrNotAuthorized)
	}
	return nil
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, userID string, input usecasecontract.PostInput) (*entity.Post, error) {
	if m.ShouldFailCreate {
		return nil, fmt.Errorf("store unavailable")
	}
	post := m.MockPost
	post.UserID = userID
	post.Content = input.Content
	return &post, nil
}

func (m *MockPostUseCase) GetPost(ctx context.Context, userID, postID string) (*entity.Post, error) {
	if err := m.checkAccess(userID, postID); err != nil {
		return nil, err
	}
	return &m.MockPost, nil
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	return []entity.Post{m.MockPost}, nil
}

func (m *MockPostUseCase) ListScheduledPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	return nil, nil
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, userID, postID string, input usecasecontract.PostInput) (*entity.Post, error) {
	if err := m.checkAccess(userID, postID); err != nil {
		return nil, err
	}
	post := m.MockPost
	post.Content = input.Content
	return &post, nil
}

func (m *MockPostUseCase) UpdatePostStatus(ctx context.Context, userID, postID string, status entity.PostStatus, scheduledDate *time.Time) (*entity.Post, error) {
	if err := m.checkAccess(userID, postID); err != nil {
		return nil, err
	}
	post := m.MockPost
	post.Status = status
	post.ScheduledDate = scheduledDate
	return &post, nil
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, userID, postID string) error {
	return m.checkAccess(userID, postID)
}
