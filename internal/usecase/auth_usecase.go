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

const (
	providerLocal  = "local"
	providerGoogle = "google"
)

// AuthUseCase implements registration, credential login and Google sign-in.
type AuthUseCase struct {
	userRepo  contract.IUserRepository
	hasher    contract.IHasher
	uuidGen   contract.IUUIDGenerator
	jwt       JWTService
	verifier  usecasecontract.ITokenVerifier
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

var _ usecasecontract.IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	uuidGen contract.IUUIDGenerator,
	jwt JWTService,
	verifier usecasecontract.ITokenVerifier,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		uuidGen:   uuidGen,
		jwt:       jwt,
		verifier:  verifier,
		validator: validator,
		logger:    logger,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, "", fmt.Errorf("name is required: %w", apperror.ErrValidation)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("email already registered: %w", apperror.ErrValidation)
	} else if !apperror.IsNotFound(err) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := uc.hasher.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGen.NewUUID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.DefaultRole(),
		AuthProvider: providerLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	uc.logger.Infof("registered user %s", user.ID)
	return user, token, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", apperror.ErrValidation)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			// Same message as a bad password so callers can't probe for accounts.
			return nil, "", fmt.Errorf("invalid credentials: %w", apperror.ErrNotAuthorized)
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", apperror.ErrNotAuthorized)
	}

	token, err := uc.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (uc *AuthUseCase) LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, "", fmt.Errorf("idToken is required: %w", apperror.ErrValidation)
	}
	if uc.verifier == nil {
		return nil, "", fmt.Errorf("google sign-in is not configured: %w", apperror.ErrUpstream)
	}

	claims, err := uc.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", fmt.Errorf("google token verification failed: %w", apperror.ErrNotAuthorized)
	}
	if claims.Email == "" {
		return nil, "", fmt.Errorf("google token carries no email: %w", apperror.ErrNotAuthorized)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(claims.Email))
	if err != nil {
		if !apperror.IsNotFound(err) {
			return nil, "", fmt.Errorf("failed to look up user: %w", err)
		}
		now := time.Now()
		user = &entity.User{
			ID:           uc.uuidGen.NewUUID(),
			Name:         claims.Name,
			Email:        strings.ToLower(claims.Email),
			Role:         entity.DefaultRole(),
			AuthProvider: providerGoogle,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
		uc.logger.Infof("created user %s via google sign-in", user.ID)
	}

	token, err := uc.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", apperror.ErrValidation)
	}
	return uc.userRepo.GetUserByID(ctx, userID)
}

// ResolveUser maps verified claims to a stored user. When the record is gone
// from both stores a minimal one is rebuilt from the claims so an authenticated
// session keeps working.
func (uc *AuthUseCase) ResolveUser(ctx context.Context, claims *entity.Claims) (*entity.User, error) {
	if claims == nil || claims.UserID == "" {
		return nil, fmt.Errorf("missing identity claims: %w", apperror.ErrNotAuthorized)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err == nil {
		return user, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	now := time.Now()
	user = &entity.User{
		ID:        claims.UserID,
		Name:      claims.Name,
		Email:     strings.ToLower(claims.Email),
		Role:      claims.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.Role == "" {
		user.Role = entity.DefaultRole()
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to restore user from claims: %w", err)
	}
	uc.logger.Warnf("rebuilt user %s from token claims", user.ID)
	return user, nil
}
