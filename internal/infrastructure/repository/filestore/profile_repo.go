package filestore

import (
	"context"
	"fmt"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	store "github.com/brandkit-io/brandkit-backend/internal/infrastructure/filestore"
)

type FileProfileRepository struct {
	store *store.Store
}

func NewFileProfileRepository(s *store.Store) *FileProfileRepository {
	return &FileProfileRepository{store: s}
}

func (r *FileProfileRepository) CreateProfile(_ context.Context, profile *entity.BusinessProfile) error {
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	return r.store.Save(profilesCollection, profile.ID, profile)
}

func (r *FileProfileRepository) GetProfileByID(_ context.Context, id string) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	found, err := r.store.Get(profilesCollection, id, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("profile %s: %w", id, apperror.ErrNotFound)
	}
	return &profile, nil
}

func (r *FileProfileRepository) GetProfileByUser(_ context.Context, userID string) (*entity.BusinessProfile, error) {
	docs, err := r.store.GetAll(profilesCollection)
	if err != nil {
		return nil, err
	}
	for _, raw := range docs {
		var profile entity.BusinessProfile
		if err := decode(raw, &profile); err != nil {
			continue
		}
		if profile.UserID == userID {
			return &profile, nil
		}
	}
	return nil, fmt.Errorf("profile for user %s: %w", userID, apperror.ErrNotFound)
}

func (r *FileProfileRepository) UpdateProfile(ctx context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	if _, err := r.GetProfileByID(ctx, profile.ID); err != nil {
		return nil, err
	}
	profile.UpdatedAt = time.Now()
	if err := r.store.Save(profilesCollection, profile.ID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
