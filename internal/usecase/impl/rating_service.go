// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shopscore/config"
	deliverycontext "shopscore/internal/delivery/context"
	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/geofence"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/errors"
	"shopscore/internal/usecase"

	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo repository.RatingRepository
	shopRepo   repository.ShopRepository
	userRepo   repository.UserRepository
	locker     service.KeyLocker
	clock      service.Clock
	publisher  service.EventPublisher
	rules      config.RatingConfig
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo repository.RatingRepository
	ShopRepo   repository.ShopRepository
	UserRepo   repository.UserRepository
	Locker     service.KeyLocker
	Clock      service.Clock
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	rules := config.RatingConfig{
		MaxDistanceMeters: config.DefaultMaxDistanceMeters,
		Cooldown:          config.DefaultCooldown,
		MinScore:          config.DefaultMinScore,
		MaxScore:          config.DefaultMaxScore,
		LockWaitTimeout:   config.DefaultLockWaitTimeout,
	}
	if params.Config != nil && params.Config.Rating != nil {
		rules = *params.Config.Rating
	}

	return &ratingService{
		ratingRepo: params.RatingRepo,
		shopRepo:   params.ShopRepo,
		userRepo:   params.UserRepo,
		locker:     params.Locker,
		clock:      params.Clock,
		publisher:  params.Publisher,
		rules:      rules,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitRating runs the eligibility checks and appends the rating.
func (srv *ratingService) SubmitRating(ctx context.Context, input *usecase.SubmitRatingInput) (*entity.Rating, error) {
	if err := srv.validate(input); err != nil {
		return nil, err
	}
	customerPos := geofence.Point{Lat: input.CustomerLatitude, Lng: input.CustomerLongitude}

	exists, err := srv.userRepo.Exists(ctx, input.CustomerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up customer")
	}
	if !exists {
		return nil, domainerrors.ErrCustomerNotFound
	}

	shop, err := srv.shopRepo.FindByID(ctx, input.ShopID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	shopPos := geofence.Point{Lat: shop.Latitude, Lng: shop.Longitude}
	inRange, err := geofence.WithinRange(customerPos, shopPos, srv.rules.MaxDistanceMeters)
	if err != nil {
		return nil, err
	}
	if !inRange {
		distance, _ := geofence.Distance(customerPos, shopPos)
		srv.log(ctx).Info("Rating rejected: out of range",
			slog.String("shop_id", shop.ID),
			slog.Float64("distance_m", distance),
		)

		return nil, domainerrors.ErrOutOfRange
	}

	stored, err := srv.appendUnlessCoolingDown(ctx, &entity.Rating{
		CustomerEmail:     input.CustomerEmail,
		ShopID:            shop.ID,
		Scores:            input.Scores(),
		CustomerLatitude:  input.CustomerLatitude,
		CustomerLongitude: input.CustomerLongitude,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Rating accepted",
		slog.String("rating_id", stored.ID.String()),
		slog.String("shop_id", stored.ShopID),
	)
	srv.publishAccepted(ctx, stored)

	return stored, nil
}

// appendUnlessCoolingDown performs the cooldown check and the append under the
// (customer, shop) key lock, so concurrent submissions for a pair accept at most one.
func (srv *ratingService) appendUnlessCoolingDown(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	lockCtx, cancel := context.WithTimeout(ctx, srv.rules.LockWaitTimeout)
	defer cancel()

	unlock, err := srv.locker.Lock(lockCtx, ratingLockKey(rating.CustomerEmail, rating.ShopID))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}
		srv.log(ctx).Warn("Rating lock not acquired", slog.Any("error", err))

		return nil, domainerrors.ErrStoreBusy
	}
	defer unlock()

	previous, err := srv.ratingRepo.FindByCustomerAndShop(ctx, rating.CustomerEmail, rating.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up previous ratings")
	}

	cutoff := srv.clock.Now().Add(-srv.rules.Cooldown)
	for _, prev := range previous {
		if prev.AcceptedAt.After(cutoff) {
			return nil, domainerrors.ErrCooldownActive
		}
	}

	stored, err := srv.ratingRepo.Append(ctx, rating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to append rating")
	}

	return stored, nil
}

func (srv *ratingService) validate(input *usecase.SubmitRatingInput) error {
	if input == nil || input.CustomerEmail == "" || input.ShopID == "" {
		return domainerrors.ErrInvalidInput.WithDetails("customer_email and shop_id are required")
	}

	scores := input.Scores()
	for _, category := range entity.Categories {
		score := scores.Get(category)
		if score < srv.rules.MinScore || score > srv.rules.MaxScore {
			return domainerrors.ErrInvalidInput.WithDetails(
				fmt.Sprintf("%s must be between %d and %d", category, srv.rules.MinScore, srv.rules.MaxScore),
			)
		}
	}

	return geofence.Point{Lat: input.CustomerLatitude, Lng: input.CustomerLongitude}.Validate()
}

// publishAccepted notifies downstream consumers. Failures are logged and never
// undo the stored rating.
func (srv *ratingService) publishAccepted(ctx context.Context, rating *entity.Rating) {
	if srv.publisher == nil {
		return
	}

	event := &service.RatingAcceptedEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		RatingID:          rating.ID.String(),
		ShopID:            rating.ShopID,
		CustomerEmail:     rating.CustomerEmail,
		OverallExperience: rating.Scores.OverallExperience,
		AcceptedAt:        rating.AcceptedAt,
	}
	if err := srv.publisher.PublishRatingAccepted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish rating accepted event",
			slog.String("rating_id", event.RatingID),
			slog.Any("error", err),
		)
	}
}

func ratingLockKey(customerEmail, shopID string) string {
	return "rating:" + shopID + ":" + customerEmail
}

// windowCutoff returns the exclusive lower bound of a trailing window.
func windowCutoff(now time.Time, window time.Duration) time.Time {
	return now.Add(-window)
}
