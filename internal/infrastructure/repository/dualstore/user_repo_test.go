package dualstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

// scriptedUserRepo returns a fixed user or error and counts every call.
type scriptedUserRepo struct {
	user  *entity.User
	err   error
	calls int
}

var _ contract.IUserRepository = (*scriptedUserRepo)(nil)

func (r *scriptedUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.calls++
	return r.err
}

func (r *scriptedUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.calls++
	return r.user, r.err
}

func (r *scriptedUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.calls++
	return r.user, r.err
}

func (r *scriptedUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.calls++
	return r.user, r.err
}

func (r *scriptedUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.calls++
	return r.err
}

func TestDualUserRepo_PrimarySuccessSkipsFallback(t *testing.T) {
	primary := &scriptedUserRepo{user: &entity.User{ID: "u-1", Email: "ann@example.com"}}
	fallback := &scriptedUserRepo{}
	repo := NewDualUserRepository(primary, fallback, nopLogger{})

	user, err := repo.GetUserByID(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, fallback.calls)
}

func TestDualUserRepo_StoreErrorFallsBackOnce(t *testing.T) {
	primary := &scriptedUserRepo{err: errors.New("connection refused")}
	fallback := &scriptedUserRepo{user: &entity.User{ID: "u-1", Email: "ann@example.com"}}
	repo := NewDualUserRepository(primary, fallback, nopLogger{})

	user, err := repo.GetUserByEmail(context.Background(), "ann@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestDualUserRepo_NotFoundIsNotAStoreFailure(t *testing.T) {
	primary := &scriptedUserRepo{err: fmt.Errorf("user u-1: %w", apperror.ErrNotFound)}
	fallback := &scriptedUserRepo{user: &entity.User{ID: "u-1"}}
	repo := NewDualUserRepository(primary, fallback, nopLogger{})

	_, err := repo.GetUserByID(context.Background(), "u-1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Zero(t, fallback.calls)
}

func TestDualUserRepo_WritesFallBackToo(t *testing.T) {
	primary := &scriptedUserRepo{err: errors.New("connection refused")}
	fallback := &scriptedUserRepo{}
	repo := NewDualUserRepository(primary, fallback, nopLogger{})

	err := repo.CreateUser(context.Background(), &entity.User{ID: "u-1"})
	assert.NoError(t, err)
	assert.Equal(t, 1, fallback.calls)
}

func TestDualUserRepo_SurfacesFallbackError(t *testing.T) {
	primary := &scriptedUserRepo{err: errors.New("connection refused")}
	fallback := &scriptedUserRepo{err: errors.New("disk full")}
	repo := NewDualUserRepository(primary, fallback, nopLogger{})

	err := repo.DeleteUser(context.Background(), "u-1")
	assert.EqualError(t, err, "disk full")
}
