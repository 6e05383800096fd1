package memory

import (
	"context"
	"sync"

	"shopscore/internal/domain/entity"
	"shopscore/internal/domain/repository"
)

// UserRepository is a user catalog keyed by email.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates an empty user catalog.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]entity.User),
	}
}

// Create persists a new user.
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return repository.ErrUserExists
	}
	r.users[user.Email] = *user

	return nil
}

// FindByEmail retrieves a user by email.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

// Exists reports whether email is registered.
func (r *UserRepository) Exists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[email]

	return ok, nil
}
