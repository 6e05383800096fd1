package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	"shopscore/internal/infra/persistence/memory"
	mockRepo "shopscore/internal/mocks/repository"
	"shopscore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRankingService_GetRankings_InvalidPeriod(t *testing.T) {
	w := newWorld(t)

	_, err := w.ranking.GetRankings(context.Background(), &usecase.RankingFilter{Period: "daily"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPeriod)
}

func TestRankingService_GetRankings_OrdersByOverallExperience(t *testing.T) {
	w := newWorld(t)
	low := w.addShop(t, "Low", "Indiranagar")
	high := w.addShop(t, "High", "Indiranagar")
	mid := w.addShop(t, "Mid", "Indiranagar")

	w.rateOverall(t, "a@example.com", low.ID, 2)
	w.rateOverall(t, "a@example.com", high.ID, 5)
	w.rateOverall(t, "b@example.com", high.ID, 4)
	w.rateOverall(t, "a@example.com", mid.ID, 3)

	got, err := w.ranking.GetRankings(context.Background(), &usecase.RankingFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, &entity.ShopRanking{ShopID: high.ID, Name: "High", Location: "Indiranagar", OverallExperience: 4.5}, got[0])
	assert.Equal(t, mid.ID, got[1].ShopID)
	assert.Equal(t, low.ID, got[2].ShopID)
}

func TestRankingService_GetRankings_ExcludesUnratedWhileScorecardZeroFills(t *testing.T) {
	w := newWorld(t)
	rated := w.addShop(t, "Rated", "Indiranagar")
	stale := w.addShop(t, "Stale", "Indiranagar")

	w.rateOverall(t, "a@example.com", stale.ID, 5)
	w.clock.Advance(10 * 24 * time.Hour)
	w.rateOverall(t, "a@example.com", rated.ID, 3)

	got, err := w.ranking.GetRankings(context.Background(), &usecase.RankingFilter{Period: entity.PeriodWeekly})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rated.ID, got[0].ShopID)

	card, err := w.scorecard.GetScorecard(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.Zero(t, card.Weekly.OverallExperience)
	assert.InDelta(t, 5.0, card.Monthly.OverallExperience, 1e-9)

	got, err = w.ranking.GetRankings(context.Background(), &usecase.RankingFilter{Period: entity.PeriodMonthly})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRankingService_GetRankings_LocationFilter(t *testing.T) {
	w := newWorld(t)
	a := w.addShop(t, "A", "Indiranagar")
	b := w.addShop(t, "B", "Koramangala")
	w.rateOverall(t, "x@example.com", a.ID, 4)
	w.rateOverall(t, "x@example.com", b.ID, 5)

	got, err := w.ranking.GetRankings(context.Background(), &usecase.RankingFilter{
		Location: "INDIRANAGAR",
		City:     "Bengaluru",
		State:    "Karnataka",
		Country:  "India",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ShopID)

	got, err = w.ranking.GetRankings(context.Background(), &usecase.RankingFilter{Location: "Indira"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRankingService_GetRankings_TiesKeepRegistrationOrderAndTopTen(t *testing.T) {
	w := newWorld(t)
	var shops []*entity.Shop
	for i := range 12 {
		shop := w.addShop(t, fmt.Sprintf("Shop %d", i+1), "Indiranagar")
		shops = append(shops, shop)
	}
	// Rate in reverse order so rating order differs from registration order.
	for i := len(shops) - 1; i >= 0; i-- {
		w.rateOverall(t, "x@example.com", shops[i].ID, 4)
	}

	got, err := w.ranking.GetRankings(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, got, 10)
	for i, row := range got {
		assert.Equal(t, shops[i].ID, row.ShopID)
	}
}

func TestRankingService_GetTopReviewers(t *testing.T) {
	w := newWorld(t)
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")

	// Outside the 30 day window.
	for range 10 {
		w.rateOverall(t, "ancient@example.com", shop.ID, 3)
	}
	w.clock.Advance(31 * 24 * time.Hour)

	counts := map[string]int{
		"five@example.com":  5,
		"four@example.com":  4,
		"three@example.com": 3,
		"two@example.com":   2,
		"one@example.com":   1,
		"also1@example.com": 1,
	}
	for _, email := range []string{"four@example.com", "five@example.com", "three@example.com", "two@example.com", "one@example.com", "also1@example.com"} {
		for range counts[email] {
			w.rateOverall(t, email, shop.ID, 3)
		}
	}

	got, err := w.ranking.GetTopReviewers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, &entity.ReviewerRanking{Email: "five@example.com", RatingsCount: 5, Badge: entity.BadgeTopReviewer}, got[0])
	assert.Equal(t, &entity.ReviewerRanking{Email: "four@example.com", RatingsCount: 4, Badge: entity.BadgeActiveReviewer}, got[1])
	assert.Equal(t, "three@example.com", got[2].Email)
	assert.Equal(t, "two@example.com", got[3].Email)
	// Ties keep first appearance order.
	assert.Equal(t, "one@example.com", got[4].Email)
}

func TestRankingService_GetTopShops(t *testing.T) {
	w := newWorld(t)
	busy := w.addShop(t, "Busy", "Indiranagar")
	quiet := w.addShop(t, "Quiet", "Koramangala")

	for range 4 {
		w.rateOverall(t, "x@example.com", quiet.ID, 3)
	}
	for range 5 {
		w.rateOverall(t, "x@example.com", busy.ID, 3)
	}

	got, err := w.ranking.GetTopShops(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, &entity.ShopPopularity{
		ShopID: busy.ID, Name: "Busy", Location: "Indiranagar", RatingsReceived: 5, Badge: entity.BadgeMostRatedShop,
	}, got[0])
	assert.Equal(t, &entity.ShopPopularity{
		ShopID: quiet.ID, Name: "Quiet", Location: "Koramangala", RatingsReceived: 4, Badge: entity.BadgePopularShop,
	}, got[1])
}

func TestRankingService_GetTopShops_SkipsUnknownShopsAfterCut(t *testing.T) {
	clk := fixedClock(testStart)
	ratings := memory.NewRatingRepository(clk)
	shopRepo := mockRepo.NewMockShopRepository(t)

	svc := NewRankingService(RankingServiceParams{
		RatingRepo: ratings,
		ShopRepo:   shopRepo,
		Clock:      clk,
		Config:     newTestConfig(),
	})

	// Six shops with descending counts; shop_2 no longer resolves.
	for i := 1; i <= 6; i++ {
		for range 7 - i {
			_, err := ratings.Append(context.Background(), &entity.Rating{ShopID: fmt.Sprintf("shop_%d", i)})
			require.NoError(t, err)
		}
	}

	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("shop_%d", i)
		if i == 2 {
			shopRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrShopNotFound)

			continue
		}
		shopRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Shop{ID: id, Name: id}, nil)
	}

	got, err := svc.GetTopShops(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "shop_1", got[0].ShopID)
	assert.Equal(t, "shop_3", got[1].ShopID)
	assert.Equal(t, "shop_5", got[3].ShopID)
}

func TestRankingService_Popularity_WindowAppliedToFullScan(t *testing.T) {
	clk := fixedClock(testStart)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)

	svc := NewRankingService(RankingServiceParams{
		RatingRepo: ratingRepo,
		ShopRepo:   shopRepo,
		Clock:      clk,
		Config:     newTestConfig(),
	})

	window := newTestConfig().Ranking.PopularityWindow
	stored := func() []*entity.Rating {
		return []*entity.Rating{
			{CustomerEmail: "old@example.com", ShopID: "shop_1", AcceptedAt: testStart.Add(-window - time.Hour)},
			{CustomerEmail: "edge@example.com", ShopID: "shop_1", AcceptedAt: testStart.Add(-window)},
			{CustomerEmail: "new@example.com", ShopID: "shop_2", AcceptedAt: testStart.Add(-time.Hour)},
		}
	}
	ratingRepo.EXPECT().FindAll(mock.Anything).Return(stored(), nil).Once()
	ratingRepo.EXPECT().FindAll(mock.Anything).Return(stored(), nil).Once()
	shopRepo.EXPECT().FindByID(mock.Anything, "shop_2").Return(&entity.Shop{ID: "shop_2", Name: "Idli Hut"}, nil)

	reviewers, err := svc.GetTopReviewers(context.Background())
	require.NoError(t, err)
	require.Len(t, reviewers, 1)
	assert.Equal(t, "new@example.com", reviewers[0].Email)

	shops, err := svc.GetTopShops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "shop_2", shops[0].ShopID)
}

func TestRankingService_NormalizeFilter(t *testing.T) {
	svc := NewRankingService(RankingServiceParams{Config: newTestConfig()}).(*rankingService)

	got := svc.normalizeFilter(nil)
	assert.Equal(t, usecase.RankingFilter{Period: entity.PeriodWeekly, Country: "India"}, got)

	in := &usecase.RankingFilter{Location: "Indiranagar", Country: "Nepal", Period: entity.PeriodMonthly}
	got = svc.normalizeFilter(in)
	assert.Equal(t, *in, got)

	in = &usecase.RankingFilter{City: "Bengaluru"}
	got = svc.normalizeFilter(in)
	assert.Equal(t, "India", got.Country)
	assert.Equal(t, "Bengaluru", got.City)
	assert.Empty(t, in.Country, "caller's filter is left untouched")
}

func TestRankingService_GetRankings_CountryDoesNotNarrow(t *testing.T) {
	w := newWorld(t)
	shop := w.addShop(t, "Dosa Corner", "Indiranagar")
	w.rateOverall(t, "asha@example.com", shop.ID, 4)

	for _, country := range []string{"", "India", "Nepal"} {
		got, err := w.ranking.GetRankings(context.Background(), &usecase.RankingFilter{Country: country})
		require.NoError(t, err)
		require.Len(t, got, 1, country)
		assert.Equal(t, shop.ID, got[0].ShopID)
	}
}
