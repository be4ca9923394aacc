package usecasecontract

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// ITokenVerifier verifies identity-provider tokens (Google sign-in).
type ITokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Claims, error)
}
