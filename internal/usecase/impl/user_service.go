package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopscore/internal/delivery/context"
	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/errors"
	"shopscore/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	clock    service.Clock
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		clock:    params.Clock,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser hashes the password and stores the account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("email and password are required")
	}
	if !input.UserType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("user_type must be customer or shop_owner")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		UserType:     input.UserType,
		CreatedAt:    srv.clock.Now(),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("email", user.Email), slog.String("user_type", user.UserType.String()))

	return user, nil
}
