package usecasecontract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// IAuthUseCase defines the interface for authentication operations.
type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// LoginWithGoogle verifies a Google ID token through the auth provider and
	// finds or creates the matching user.
	LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// ResolveUser maps verified token claims to a full user record, creating a
	// minimal record from the claims when none exists in either store.
	ResolveUser(ctx context.Context, claims *entity.Claims) (*entity.User, error)
}
