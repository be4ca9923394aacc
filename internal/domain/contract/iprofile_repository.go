package contract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

type IProfileRepository interface {
	CreateProfile(ctx context.Context, profile *entity.BusinessProfile) error
	GetProfileByID(ctx context.Context, id string) (*entity.BusinessProfile, error)
	// GetProfileByUser retrieves the single profile owned by a user.
	GetProfileByUser(ctx context.Context, userID string) (*entity.BusinessProfile, error)
	// UpdateProfile replaces the stored profile document and returns the result.
	UpdateProfile(ctx context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error)
}
