package usecase

import (
	"context"

	"shopscore/internal/domain/entity"
)

// RegisterUserInput represents the input for account registration
type RegisterUserInput struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	UserType entity.UserType `json:"user_type"`
}

// UserUsecase defines the interface for account use cases
type UserUsecase interface {
	// RegisterUser creates an account. Fails with ErrUserAlreadyExists for a known email.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
}
