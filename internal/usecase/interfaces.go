package usecase

import (
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
