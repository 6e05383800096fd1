package postgres

import (
	"context"
	"database/sql"
	"time"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingAppendLockID is the transaction-scoped advisory lock serializing appends,
// which keeps accepted_at non-decreasing along seq across service instances.
const ratingAppendLockID int64 = 0x5c0e_ca4d

// ratingRepository implements the domain.RatingRepository interface.
type ratingRepository struct {
	db    *gorm.DB
	clock service.Clock
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB, clock service.Clock) repository.RatingRepository {
	return &ratingRepository{
		db:    db,
		clock: clock,
	}
}

// Append stores a rating under the append advisory lock.
func (repo *ratingRepository) Append(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	ratingM := fromRatingDomain(rating)
	ratingM.ID = uuid.New()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", ratingAppendLockID).Error; err != nil {
			return errors.Wrap(err, "failed to acquire append lock")
		}

		var last sql.NullTime
		if err := tx.Model(&model.RatingModel{}).Select("MAX(accepted_at)").Row().Scan(&last); err != nil {
			return errors.Wrap(err, "failed to read latest accepted_at")
		}

		ratingM.AcceptedAt = repo.clock.Now().UTC()
		if last.Valid && ratingM.AcceptedAt.Before(last.Time) {
			ratingM.AcceptedAt = last.Time.UTC()
		}

		return tx.Create(ratingM).Error
	})
	if err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("rating scores out of range")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("missing required rating information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to append rating")
	}

	return toRatingDomain(ratingM), nil
}

// FindByShop returns every rating of a shop in insertion order.
func (repo *ratingRepository) FindByShop(ctx context.Context, shopID string) ([]*entity.Rating, error) {
	return repo.find(ctx, "failed to find ratings by shop", "shop_id = ?", shopID)
}

// FindByCustomerAndShop returns every rating a customer gave a shop in insertion order.
func (repo *ratingRepository) FindByCustomerAndShop(ctx context.Context, customerEmail, shopID string) ([]*entity.Rating, error) {
	return repo.find(ctx, "failed to find ratings by customer and shop",
		"customer_email = ? AND shop_id = ?", customerEmail, shopID)
}

// FindAll returns every rating in insertion order.
func (repo *ratingRepository) FindAll(ctx context.Context) ([]*entity.Rating, error) {
	return repo.find(ctx, "failed to find ratings", "1 = 1")
}

// FindSince returns ratings accepted strictly after cutoff.
func (repo *ratingRepository) FindSince(ctx context.Context, cutoff time.Time) ([]*entity.Rating, error) {
	return repo.find(ctx, "failed to find ratings since cutoff", "accepted_at > ?", cutoff.UTC())
}

func (repo *ratingRepository) find(ctx context.Context, errMsg string, query string, args ...any) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("seq ASC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// toRatingDomain converts a RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:            data.ID,
		CustomerEmail: data.CustomerEmail,
		ShopID:        data.ShopID,
		Scores: entity.Scores{
			FoodQuality:       data.FoodQuality,
			Hygiene:           data.Hygiene,
			Service:           data.Service,
			ValueForMoney:     data.ValueForMoney,
			OverallExperience: data.OverallExperience,
		},
		CustomerLatitude:  data.CustomerLatitude,
		CustomerLongitude: data.CustomerLongitude,
		AcceptedAt:        data.AcceptedAt.UTC(),
	}
}

// fromRatingDomain converts a domain Rating entity to a RatingModel for persistence.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:                data.ID,
		CustomerEmail:     data.CustomerEmail,
		ShopID:            data.ShopID,
		FoodQuality:       data.Scores.FoodQuality,
		Hygiene:           data.Scores.Hygiene,
		Service:           data.Scores.Service,
		ValueForMoney:     data.Scores.ValueForMoney,
		OverallExperience: data.Scores.OverallExperience,
		CustomerLatitude:  data.CustomerLatitude,
		CustomerLongitude: data.CustomerLongitude,
		AcceptedAt:        data.AcceptedAt,
	}
}
