package dualstore

import (
	"context"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

type DualUserRepository struct {
	primary  contract.IUserRepository
	fallback contract.IUserRepository
	logger   usecasecontract.IAppLogger
}

var _ contract.IUserRepository = (*DualUserRepository)(nil)

func NewDualUserRepository(primary, fallback contract.IUserRepository, logger usecasecontract.IAppLogger) *DualUserRepository {
	return &DualUserRepository{primary: primary, fallback: fallback, logger: logger}
}

func (r *DualUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	err := r.primary.CreateUser(ctx, user)
	if shouldFallBack(err) {
		recordFallback(r.logger, "users", "create", err)
		return r.fallback.CreateUser(ctx, user)
	}
	return err
}

func (r *DualUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := r.primary.GetUserByID(ctx, id)
	if shouldFallBack(err) {
		recordFallback(r.logger, "users", "get", err)
		return r.fallback.GetUserByID(ctx, id)
	}
	return user, err
}

func (r *DualUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := r.primary.GetUserByEmail(ctx, email)
	if shouldFallBack(err) {
		recordFallback(r.logger, "users", "getByEmail", err)
		return r.fallback.GetUserByEmail(ctx, email)
	}
	return user, err
}

func (r *DualUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	updated, err := r.primary.UpdateUser(ctx, user)
	if shouldFallBack(err) {
		recordFallback(r.logger, "users", "update", err)
		return r.fallback.UpdateUser(ctx, user)
	}
	return updated, err
}

func (r *DualUserRepository) DeleteUser(ctx context.Context, id string) error {
	err := r.primary.DeleteUser(ctx, id)
	if shouldFallBack(err) {
		recordFallback(r.logger, "users", "delete", err)
		return r.fallback.DeleteUser(ctx, id)
	}
	return err
}
