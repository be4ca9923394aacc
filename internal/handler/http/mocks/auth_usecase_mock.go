package mocks

import (
	"context"
	"fmt"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// MockAuthUseCase is a mock implementation of the IAuthUseCase interface
type MockAuthUseCase struct {
	// Control mock behavior
	ShouldFailRegister    bool
	ShouldFailLogin       bool
	ShouldFailGoogleLogin bool
	ShouldFailGetByID     bool
	ShouldFailResolveUser bool

	// Return values
	MockUser  entity.User
	MockToken string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUseCase)(nil)

func NewMockAuthUseCase() *MockAuthUseCase {
	return &MockAuthUseCase{
		MockUser: entity.User{
			ID:           "mock-user-id",
			Name:         "Test User",
			Email:        "test@example.com",
			PasswordHash: "$2a$10$mockedhash",
			Role:         entity.UserRoleUser,
		},
		MockToken: "mock_access_token",
	}
}

func (m *MockAuthUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if m.ShouldFailRegister {
		return nil, "", fmt.Errorf("email already registered: %w", apperror.ErrValidation)
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", fmt.Errorf("invalid credentials: %w", apperror.ErrNotAuthorized)
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUseCase) LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error) {
	if m.ShouldFailGoogleLogin {
		return nil, "", fmt.Errorf("google token verification failed: %w", apperror.ErrNotAuthorized)
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUseCase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
	}
	return &m.MockUser, nil
}

func (m *MockAuthUseCase) ResolveUser(ctx context.Context, claims *entity.Claims) (*entity.User, error) {
	if m.ShouldFailResolveUser {
		return nil, apperror.ErrNotAuthorized
	}
	return &m.MockUser, nil
}
