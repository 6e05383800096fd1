package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shopscore/config"
	"shopscore/internal/domain/entity"
	"shopscore/internal/infra/clock"
	"shopscore/internal/infra/lock"
	"shopscore/internal/infra/persistence/memory"
	"shopscore/internal/usecase"

	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

// Shop position used across tests.
const (
	shopLat = 12.9716
	shopLng = 77.5946
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// world wires the services against the in-memory stores and a manual clock.
type world struct {
	clock   *clock.Manual
	ratings *memory.RatingRepository
	shops   *memory.ShopRepository
	users   *memory.UserRepository

	rating    usecase.RatingUsecase
	scorecard usecase.ScorecardUsecase
	ranking   usecase.RankingUsecase
}

func newWorld(t *testing.T) *world {
	t.Helper()

	clk := clock.NewManual(testStart)
	w := &world{
		clock:   clk,
		ratings: memory.NewRatingRepository(clk),
		shops:   memory.NewShopRepository(clk),
		users:   memory.NewUserRepository(),
	}
	cfg := newTestConfig()

	w.rating = NewRatingService(RatingServiceParams{
		RatingRepo: w.ratings,
		ShopRepo:   w.shops,
		UserRepo:   w.users,
		Locker:     lock.NewMemoryLocker(),
		Clock:      clk,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	})
	w.scorecard = NewScorecardService(ScorecardServiceParams{
		RatingRepo: w.ratings,
		ShopRepo:   w.shops,
		Clock:      clk,
	})
	w.ranking = NewRankingService(RankingServiceParams{
		RatingRepo: w.ratings,
		ShopRepo:   w.shops,
		Clock:      clk,
		Config:     cfg,
	})

	return w
}

func (w *world) addCustomer(t *testing.T, email string) {
	t.Helper()

	require.NoError(t, w.users.Create(context.Background(), &entity.User{
		Email:    email,
		UserType: entity.UserTypeCustomer,
	}))
}

func (w *world) addShop(t *testing.T, name, location string) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{
		Name:      name,
		Location:  location,
		Latitude:  shopLat,
		Longitude: shopLng,
	}
	require.NoError(t, w.shops.Create(context.Background(), shop))

	return shop
}

// rate submits a rating with every category set to score, standing at the shop.
func (w *world) rate(t *testing.T, email, shopID string, score int) {
	t.Helper()

	_, err := w.rating.SubmitRating(context.Background(), ratingInput(email, shopID, score))
	require.NoError(t, err)
}

// rateOverall stores a rating directly, bypassing the gate, with the given overall score.
func (w *world) rateOverall(t *testing.T, email, shopID string, overall int) {
	t.Helper()

	_, err := w.ratings.Append(context.Background(), &entity.Rating{
		CustomerEmail: email,
		ShopID:        shopID,
		Scores: entity.Scores{
			FoodQuality:       3,
			Hygiene:           3,
			Service:           3,
			ValueForMoney:     3,
			OverallExperience: overall,
		},
	})
	require.NoError(t, err)
}

func ratingInput(email, shopID string, score int) *usecase.SubmitRatingInput {
	return &usecase.SubmitRatingInput{
		CustomerEmail:     email,
		ShopID:            shopID,
		FoodQuality:       score,
		Hygiene:           score,
		Service:           score,
		ValueForMoney:     score,
		OverallExperience: score,
		CustomerLatitude:  shopLat,
		CustomerLongitude: shopLng,
	}
}
