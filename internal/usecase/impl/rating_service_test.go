package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/geofence/geofencetest"
	"shopscore/internal/domain/service"
	"shopscore/internal/infra/lock"
	mockRepo "shopscore/internal/mocks/repository"
	mockSvc "shopscore/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingService_SubmitRating_Success(t *testing.T) {
	w := newWorld(t)
	w.addCustomer(t, "asha@example.com")
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")

	rating, err := w.rating.SubmitRating(context.Background(), ratingInput("asha@example.com", shop.ID, 4))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rating.ID)
	assert.Equal(t, shop.ID, rating.ShopID)
	assert.Equal(t, 4, rating.Scores.OverallExperience)
	assert.True(t, rating.AcceptedAt.Equal(testStart))

	all, err := w.ratings.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRatingService_SubmitRating_Rejections(t *testing.T) {
	w := newWorld(t)
	w.addCustomer(t, "asha@example.com")
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")

	tests := []struct {
		name    string
		mutate  func(in *inputMutation)
		wantErr error
	}{
		{
			name:    "unknown customer",
			mutate:  func(in *inputMutation) { in.email = "nobody@example.com" },
			wantErr: domainerrors.ErrCustomerNotFound,
		},
		{
			name:    "unknown shop",
			mutate:  func(in *inputMutation) { in.shopID = "shop_99" },
			wantErr: domainerrors.ErrShopNotFound,
		},
		{
			name:    "about 220 meters away",
			mutate:  func(in *inputMutation) { in.lat = shopLat + 0.002 },
			wantErr: domainerrors.ErrOutOfRange,
		},
		{
			name:    "101 meters away",
			mutate:  func(in *inputMutation) { in.lat = geofencetest.NorthOf(shopLat, 101) },
			wantErr: domainerrors.ErrOutOfRange,
		},
		{
			name:    "100.05 meters away",
			mutate:  func(in *inputMutation) { in.lat = geofencetest.NorthOf(shopLat, 100.05) },
			wantErr: domainerrors.ErrOutOfRange,
		},
		{
			name:    "score below scale",
			mutate:  func(in *inputMutation) { in.score = 0 },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "score above scale",
			mutate:  func(in *inputMutation) { in.score = 6 },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "latitude out of bounds",
			mutate:  func(in *inputMutation) { in.lat = 91 },
			wantErr: domainerrors.ErrInvalidInput,
		},
		{
			name:    "missing shop id",
			mutate:  func(in *inputMutation) { in.shopID = "" },
			wantErr: domainerrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &inputMutation{email: "asha@example.com", shopID: shop.ID, score: 4, lat: shopLat}
			tt.mutate(m)

			input := ratingInput(m.email, m.shopID, m.score)
			input.CustomerLatitude = m.lat

			_, err := w.rating.SubmitRating(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			all, err := w.ratings.FindAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

type inputMutation struct {
	email  string
	shopID string
	score  int
	lat    float64
}

func TestRatingService_SubmitRating_InRangeNearby(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
	}{
		{name: "55 meters north", meters: 55},
		{name: "99.5 meters north", meters: 99.5},
		{name: "exactly 100 meters north", meters: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			w.addCustomer(t, "asha@example.com")
			shop := w.addShop(t, "Dosa Corner", "Indiranagar")

			input := ratingInput("asha@example.com", shop.ID, 5)
			input.CustomerLatitude = geofencetest.NorthOf(shopLat, tt.meters)

			rating, err := w.rating.SubmitRating(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, shop.ID, rating.ShopID)
		})
	}
}

func TestRatingService_SubmitRating_Cooldown(t *testing.T) {
	w := newWorld(t)
	w.addCustomer(t, "asha@example.com")
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")
	other := w.addShop(t, "Chaat Street", "Indiranagar")
	ctx := context.Background()

	w.rate(t, "asha@example.com", shop.ID, 4)

	w.clock.Advance(time.Hour)
	_, err := w.rating.SubmitRating(ctx, ratingInput("asha@example.com", shop.ID, 5))
	assert.ErrorIs(t, err, domainerrors.ErrCooldownActive)

	// Other shops are not affected.
	_, err = w.rating.SubmitRating(ctx, ratingInput("asha@example.com", other.ID, 5))
	assert.NoError(t, err)

	w.clock.Set(testStart.Add(7*24*time.Hour - time.Second))
	_, err = w.rating.SubmitRating(ctx, ratingInput("asha@example.com", shop.ID, 5))
	assert.ErrorIs(t, err, domainerrors.ErrCooldownActive)

	// Exactly seven days later the previous rating falls out of the window.
	w.clock.Set(testStart.Add(7 * 24 * time.Hour))
	_, err = w.rating.SubmitRating(ctx, ratingInput("asha@example.com", shop.ID, 5))
	assert.NoError(t, err)

	stored, err := w.ratings.FindByCustomerAndShop(ctx, "asha@example.com", shop.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestRatingService_SubmitRating_ConcurrentSamePair(t *testing.T) {
	w := newWorld(t)
	w.addCustomer(t, "asha@example.com")
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")

	const submitters = 32

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		accepted  int
		cooldowns int
	)
	start := make(chan struct{})
	for range submitters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := w.rating.SubmitRating(context.Background(), ratingInput("asha@example.com", shop.ID, 3))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, domainerrors.ErrCooldownActive):
				cooldowns++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, submitters-1, cooldowns)

	all, err := w.ratings.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRatingService_SubmitRating_AcceptedAtNeverDecreases(t *testing.T) {
	w := newWorld(t)
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		w.addCustomer(t, email)
	}

	w.rate(t, "a@example.com", shop.ID, 4)
	w.clock.Advance(-time.Minute)
	w.rate(t, "b@example.com", shop.ID, 4)
	w.clock.Advance(2 * time.Minute)
	w.rate(t, "c@example.com", shop.ID, 4)

	all, err := w.ratings.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].AcceptedAt.Before(all[i-1].AcceptedAt))
	}
}

// gateFixtures builds the gate against mocks for paths the memory stores cannot produce.
type gateFixtures struct {
	service    *ratingService
	ratingRepo *mockRepo.MockRatingRepository
	shopRepo   *mockRepo.MockShopRepository
	userRepo   *mockRepo.MockUserRepository
	locker     *mockSvc.MockKeyLocker
	publisher  *mockSvc.MockEventPublisher
}

func createTestRatingService(t *testing.T) gateFixtures {
	f := gateFixtures{
		ratingRepo: mockRepo.NewMockRatingRepository(t),
		shopRepo:   mockRepo.NewMockShopRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		locker:     mockSvc.NewMockKeyLocker(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	svc := NewRatingService(RatingServiceParams{
		RatingRepo: f.ratingRepo,
		ShopRepo:   f.shopRepo,
		UserRepo:   f.userRepo,
		Locker:     f.locker,
		Clock:      fixedClock(testStart),
		Publisher:  f.publisher,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
	f.service = svc.(*ratingService)

	return f
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func (f gateFixtures) expectEligible(ctx context.Context) {
	f.userRepo.EXPECT().Exists(ctx, "asha@example.com").Return(true, nil)
	f.shopRepo.EXPECT().FindByID(ctx, "shop_1").Return(&entity.Shop{ID: "shop_1", Latitude: shopLat, Longitude: shopLng}, nil)
}

func TestRatingService_SubmitRating_PublishesEvent(t *testing.T) {
	f := createTestRatingService(t)
	ctx := context.Background()
	f.expectEligible(ctx)

	released := false
	f.locker.EXPECT().Lock(mock.Anything, "rating:shop_1:asha@example.com").Return(func() { released = true }, nil)
	f.ratingRepo.EXPECT().FindByCustomerAndShop(ctx, "asha@example.com", "shop_1").Return(nil, nil)

	stored := &entity.Rating{ID: uuid.New(), CustomerEmail: "asha@example.com", ShopID: "shop_1", AcceptedAt: testStart}
	stored.Scores.OverallExperience = 5
	f.ratingRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Rating")).Return(stored, nil)

	f.publisher.EXPECT().
		PublishRatingAccepted(ctx, mock.MatchedBy(func(e *service.RatingAcceptedEvent) bool {
			return e.RatingID == stored.ID.String() && e.ShopID == "shop_1" && e.OverallExperience == 5
		})).
		Return(nil)

	got, err := f.service.SubmitRating(ctx, ratingInput("asha@example.com", "shop_1", 5))
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.True(t, released)
}

func TestRatingService_SubmitRating_PublishFailureKeepsRating(t *testing.T) {
	f := createTestRatingService(t)
	ctx := context.Background()
	f.expectEligible(ctx)

	f.locker.EXPECT().Lock(mock.Anything, mock.Anything).Return(func() {}, nil)
	f.ratingRepo.EXPECT().FindByCustomerAndShop(ctx, "asha@example.com", "shop_1").Return(nil, nil)
	f.ratingRepo.EXPECT().Append(ctx, mock.Anything).Return(&entity.Rating{ID: uuid.New(), ShopID: "shop_1"}, nil)
	f.publisher.EXPECT().PublishRatingAccepted(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := f.service.SubmitRating(ctx, ratingInput("asha@example.com", "shop_1", 5))
	assert.NoError(t, err)
}

func TestRatingService_SubmitRating_LockTimeoutIsStoreBusy(t *testing.T) {
	f := createTestRatingService(t)
	ctx := context.Background()
	f.expectEligible(ctx)

	f.locker.EXPECT().Lock(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

	_, err := f.service.SubmitRating(ctx, ratingInput("asha@example.com", "shop_1", 5))
	assert.ErrorIs(t, err, domainerrors.ErrStoreBusy)
}

func TestRatingService_SubmitRating_HeldLockTimesOut(t *testing.T) {
	w := newWorld(t)
	w.addCustomer(t, "asha@example.com")
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")

	locker := lock.NewMemoryLocker()
	cfg := newTestConfig()
	cfg.Rating.LockWaitTimeout = 20 * time.Millisecond
	gate := NewRatingService(RatingServiceParams{
		RatingRepo: w.ratings,
		ShopRepo:   w.shops,
		UserRepo:   w.users,
		Locker:     locker,
		Clock:      w.clock,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	})

	unlock, err := locker.Lock(context.Background(), ratingLockKey("asha@example.com", shop.ID))
	require.NoError(t, err)
	defer unlock()

	_, err = gate.SubmitRating(context.Background(), ratingInput("asha@example.com", shop.ID, 4))
	assert.ErrorIs(t, err, domainerrors.ErrStoreBusy)
}

func TestRatingService_SubmitRating_CallerCancelled(t *testing.T) {
	f := createTestRatingService(t)
	ctx, cancel := context.WithCancel(context.Background())
	f.expectEligible(ctx)

	f.locker.EXPECT().Lock(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string) (func(), error) {
			cancel()

			return nil, context.Canceled
		})

	_, err := f.service.SubmitRating(ctx, ratingInput("asha@example.com", "shop_1", 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domainerrors.ErrStoreBusy)
}

func TestRatingService_SubmitRating_StoreFailure(t *testing.T) {
	f := createTestRatingService(t)
	ctx := context.Background()
	f.expectEligible(ctx)

	f.locker.EXPECT().Lock(mock.Anything, mock.Anything).Return(func() {}, nil)
	f.ratingRepo.EXPECT().FindByCustomerAndShop(ctx, "asha@example.com", "shop_1").Return(nil, errors.New("connection reset"))

	_, err := f.service.SubmitRating(ctx, ratingInput("asha@example.com", "shop_1", 5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up previous ratings")
}
