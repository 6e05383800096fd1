package postgres

import (
	"context"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	"shopscore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Exists reports whether email is registered.
func (repo *userRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		UserType:     entity.UserType(data.UserType),
		CreatedAt:    data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		UserType:     data.UserType.String(),
		CreatedAt:    data.CreatedAt,
	}
}
