package filestore

import (
	"context"
	"fmt"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	store "github.com/brandkit-io/brandkit-backend/internal/infrastructure/filestore"
)

// userDoc mirrors entity.User with persistence tags. The entity hides the
// password hash from JSON responses; the store still has to keep it.
type userDoc struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"password_hash,omitempty"`
	Role         entity.UserRole `json:"role"`
	AuthProvider string          `json:"auth_provider,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		AuthProvider: d.AuthProvider,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type FileUserRepository struct {
	store *store.Store
}

func NewFileUserRepository(s *store.Store) *FileUserRepository {
	return &FileUserRepository{store: s}
}

func (r *FileUserRepository) CreateUser(_ context.Context, user *entity.User) error {
	return r.store.Save(usersCollection, user.ID, toUserDoc(user))
}

func (r *FileUserRepository) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	var doc userDoc
	found, err := r.store.Get(usersCollection, id, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
	}
	return doc.toEntity(), nil
}

func (r *FileUserRepository) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	docs, err := r.store.GetAll(usersCollection)
	if err != nil {
		return nil, err
	}
	for _, raw := range docs {
		var doc userDoc
		if err := decode(raw, &doc); err != nil {
			continue
		}
		if doc.Email == email {
			return doc.toEntity(), nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, apperror.ErrNotFound)
}

func (r *FileUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, err := r.GetUserByID(ctx, user.ID); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now()
	if err := r.store.Save(usersCollection, user.ID, toUserDoc(user)); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *FileUserRepository) DeleteUser(_ context.Context, id string) error {
	existed, err := r.store.Delete(usersCollection, id)
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}
