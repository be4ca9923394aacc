package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

type stubJWT struct{}

func (stubJWT) GenerateAccessToken(user *entity.User) (string, error) {
	return "token-for-" + user.ID, nil
}

func (stubJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	return nil, errors.New("not used")
}

type stubVerifier struct {
	claims *entity.Claims
	err    error
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.Claims, error) {
	return s.claims, s.err
}

func newAuthFixture(verifier *stubVerifier) (*AuthUseCase, *memUserRepo) {
	users := newMemUserRepo()
	uc := NewAuthUseCase(users, plainHasher{}, &seqUUIDGen{}, stubJWT{}, verifier, lenientValidator{}, nopLogger{})
	return uc, users
}

func TestRegister_CreatesUserAndToken(t *testing.T) {
	uc, _ := newAuthFixture(nil)

	user, token, err := uc.Register(context.Background(), "Ann", "Ann@Example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, entity.UserRoleUser, user.Role)
	assert.Equal(t, "token-for-"+user.ID, token)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newAuthFixture(nil)

	_, _, err := uc.Register(context.Background(), "Ann", "ann@example.com", "secret1")
	assert.NoError(t, err)

	_, _, err = uc.Register(context.Background(), "Ann Again", "ann@example.com", "secret2")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRegister_WeakPassword(t *testing.T) {
	uc, _ := newAuthFixture(nil)

	_, _, err := uc.Register(context.Background(), "Ann", "ann@example.com", "short")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestLogin(t *testing.T) {
	uc, _ := newAuthFixture(nil)

	_, _, err := uc.Register(context.Background(), "Ann", "ann@example.com", "secret1")
	assert.NoError(t, err)

	user, token, err := uc.Login(context.Background(), "ann@example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newAuthFixture(nil)

	_, _, err := uc.Register(context.Background(), "Ann", "ann@example.com", "secret1")
	assert.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "ann@example.com", "wrong-pass")
	assert.ErrorIs(t, err, apperror.ErrNotAuthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAuthFixture(nil)

	_, _, err := uc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperror.ErrNotAuthorized)
}

func TestLoginWithGoogle_CreatesUserOnFirstSignIn(t *testing.T) {
	verifier := &stubVerifier{claims: &entity.Claims{UserID: "google-uid", Email: "Ann@Example.com", Name: "Ann"}}
	uc, users := newAuthFixture(verifier)

	user, token, err := uc.LoginWithGoogle(context.Background(), "some-id-token")
	assert.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.NotEmpty(t, token)

	stored, err := users.GetUserByEmail(context.Background(), "ann@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	// Second sign-in reuses the record.
	again, _, err := uc.LoginWithGoogle(context.Background(), "some-id-token")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestLoginWithGoogle_BadToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("token invalid")}
	uc, _ := newAuthFixture(verifier)

	_, _, err := uc.LoginWithGoogle(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperror.ErrNotAuthorized)
}

func TestResolveUser_RebuildsMissingRecord(t *testing.T) {
	uc, users := newAuthFixture(nil)

	claims := &entity.Claims{UserID: "ghost-id", Email: "ghost@example.com", Name: "Ghost", Role: entity.UserRoleUser}
	user, err := uc.ResolveUser(context.Background(), claims)
	assert.NoError(t, err)
	assert.Equal(t, "ghost-id", user.ID)

	stored, err := users.GetUserByID(context.Background(), "ghost-id")
	assert.NoError(t, err)
	assert.Equal(t, "ghost@example.com", stored.Email)
}

func TestResolveUser_NilClaims(t *testing.T) {
	uc, _ := newAuthFixture(nil)
	_, err := uc.ResolveUser(context.Background(), nil)
	assert.ErrorIs(t, err, apperror.ErrNotAuthorized)
}
