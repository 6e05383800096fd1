// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shopscore/internal/domain/entity"
	"shopscore/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user is registered under an email.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when an email is already registered.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository is the user catalog consumed by registration and the rating gate.
type UserRepository interface {
	// Create persists a new user. Returns ErrUserExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Exists reports whether an email is registered.
	Exists(ctx context.Context, email string) (bool, error)
}
