package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// PostUseCase implements post CRUD with always-on ownership checks.
type PostUseCase struct {
	postRepo    contract.IPostRepository
	profileRepo contract.IProfileRepository
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

var _ usecasecontract.IPostUseCase = (*PostUseCase)(nil)

func NewPostUseCase(
	postRepo contract.IPostRepository,
	profileRepo contract.IProfileRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *PostUseCase {
	return &PostUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

func (uc *PostUseCase) CreatePost(ctx context.Context, userID string, input usecasecontract.PostInput) (*entity.Post, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("content is required: %w", apperror.ErrValidation)
	}
	if input.Platform == "" {
		input.Platform = entity.PlatformGeneral
	}
	if !entity.ValidPlatform(input.Platform) {
		return nil, fmt.Errorf("invalid platform %q: %w", input.Platform, apperror.ErrValidation)
	}

	profileID := ""
	if profile, err := uc.profileRepo.GetProfileByUser(ctx, userID); err == nil {
		profileID = profile.ID
	} else if !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	now := time.Now()
	post := &entity.Post{
		ID:               uc.uuidGen.NewUUID(),
		UserID:           userID,
		ProfileID:        profileID,
		Content:          input.Content,
		Headline:         input.Headline,
		CallToAction:     input.CallToAction,
		Hashtags:         input.Hashtags,
		ImageURL:         input.ImageURL,
		ImageDescription: input.ImageDescription,
		Template:         input.Template,
		Platform:         input.Platform,
		ScheduledDate:    input.ScheduledDate,
		Status:           entity.PostStatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (uc *PostUseCase) GetPost(ctx context.Context, userID, postID string) (*entity.Post, error) {
	return uc.ownedPost(ctx, userID, postID)
}

func (uc *PostUseCase) ListPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	return uc.postRepo.GetPostsByUser(ctx, userID)
}

func (uc *PostUseCase) ListScheduledPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	return uc.postRepo.GetScheduledPosts(ctx, userID)
}

func (uc *PostUseCase) UpdatePost(ctx context.Context, userID, postID string, input usecasecontract.PostInput) (*entity.Post, error) {
	post, err := uc.ownedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("content is required: %w", apperror.ErrValidation)
	}
	if input.Platform != "" {
		if !entity.ValidPlatform(input.Platform) {
			return nil, fmt.Errorf("invalid platform %q: %w", input.Platform, apperror.ErrValidation)
		}
		post.Platform = input.Platform
	}

	post.Content = input.Content
	post.Headline = input.Headline
	post.CallToAction = input.CallToAction
	post.Hashtags = input.Hashtags
	post.ImageURL = input.ImageURL
	post.ImageDescription = input.ImageDescription
	post.Template = input.Template
	if input.ScheduledDate != nil {
		post.ScheduledDate = input.ScheduledDate
	}
	post.UpdatedAt = time.Now()

	return uc.postRepo.UpdatePost(ctx, post)
}

// UpdatePostStatus moves a post through its lifecycle. Scheduling requires a
// future date; leaving the scheduled state clears it.
func (uc *PostUseCase) UpdatePostStatus(ctx context.Context, userID, postID string, status entity.PostStatus, scheduledDate *time.Time) (*entity.Post, error) {
	if !entity.ValidPostStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, apperror.ErrValidation)
	}
	post, err := uc.ownedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if status == entity.PostStatusScheduled {
		if scheduledDate == nil {
			return nil, fmt.Errorf("scheduledDate is required to schedule a post: %w", apperror.ErrValidation)
		}
		if !scheduledDate.After(time.Now()) {
			return nil, fmt.Errorf("scheduledDate must be in the future: %w", apperror.ErrValidation)
		}
		post.ScheduledDate = scheduledDate
	} else {
		post.ScheduledDate = nil
	}
	post.Status = status
	post.UpdatedAt = time.Now()

	return uc.postRepo.UpdatePost(ctx, post)
}

func (uc *PostUseCase) DeletePost(ctx context.Context, userID, postID string) error {
	if _, err := uc.ownedPost(ctx, userID, postID); err != nil {
		return err
	}
	if err := uc.postRepo.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	uc.logger.Infof("deleted post %s for user %s", postID, userID)
	return nil
}

// ownedPost loads a post and rejects callers that do not own it.
func (uc *PostUseCase) ownedPost(ctx context.Context, userID, postID string) (*entity.Post, error) {
	if userID == "" || postID == "" {
		return nil, fmt.Errorf("user id and post id are required: %w", apperror.ErrValidation)
	}
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, fmt.Errorf("post %s does not belong to caller: %w", postID, apperror.ErrNotAuthorized)
	}
	return post, nil
}
