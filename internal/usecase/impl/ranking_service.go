package impl

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"shopscore/config"
	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/errors"
	"shopscore/internal/usecase"

	"go.uber.org/fx"
)

type rankingService struct {
	ratingRepo repository.RatingRepository
	shopRepo   repository.ShopRepository
	clock      service.Clock
	cfg        config.RankingConfig
}

// RankingServiceParams holds dependencies for RankingService, injected by Fx.
type RankingServiceParams struct {
	fx.In

	RatingRepo repository.RatingRepository
	ShopRepo   repository.ShopRepository
	Clock      service.Clock
	Config     *config.Config
}

// NewRankingService is the constructor for rankingService.
func NewRankingService(params RankingServiceParams) usecase.RankingUsecase {
	cfg := config.RankingConfig{
		DefaultCountry:   config.DefaultCountry,
		LeaderboardSize:  config.DefaultLeaderboardSize,
		PopularitySize:   config.DefaultPopularitySize,
		PopularityWindow: config.DefaultPopularityWindow,
		BadgeThreshold:   config.DefaultBadgeThreshold,
	}
	if params.Config != nil && params.Config.Ranking != nil {
		cfg = *params.Config.Ranking
	}

	return &rankingService{
		ratingRepo: params.RatingRepo,
		shopRepo:   params.ShopRepo,
		clock:      params.Clock,
		cfg:        cfg,
	}
}

// GetRankings ranks shops by mean overall experience over the period.
func (srv *rankingService) GetRankings(ctx context.Context, filter *usecase.RankingFilter) ([]*entity.ShopRanking, error) {
	f := srv.normalizeFilter(filter)
	period := f.Period
	if !period.IsValid() {
		return nil, domainerrors.ErrInvalidPeriod
	}

	shops, err := srv.shopRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}
	ratings, err := srv.ratingRepo.FindSince(ctx, windowCutoff(srv.clock.Now(), period.Window()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ratings")
	}

	type tally struct{ sum, count int }
	tallies := make(map[string]*tally)
	for _, rating := range ratings {
		t, ok := tallies[rating.ShopID]
		if !ok {
			t = &tally{}
			tallies[rating.ShopID] = t
		}
		t.sum += rating.Scores.OverallExperience
		t.count++
	}

	rankings := make([]*entity.ShopRanking, 0, len(shops))
	for _, shop := range shops {
		if f.Location != "" && !strings.EqualFold(shop.Location, f.Location) {
			continue
		}
		t, ok := tallies[shop.ID]
		if !ok {
			continue
		}
		rankings = append(rankings, &entity.ShopRanking{
			ShopID:            shop.ID,
			Name:              shop.Name,
			Location:          shop.Location,
			OverallExperience: roundScore(float64(t.sum) / float64(t.count)),
		})
	}

	slices.SortStableFunc(rankings, func(a, b *entity.ShopRanking) int {
		return cmp.Compare(b.OverallExperience, a.OverallExperience)
	})

	return truncate(rankings, srv.cfg.LeaderboardSize), nil
}

// normalizeFilter returns a copy of filter with the default period and country
// filled in. City, State and Country do not narrow the leaderboard.
func (srv *rankingService) normalizeFilter(filter *usecase.RankingFilter) usecase.RankingFilter {
	var f usecase.RankingFilter
	if filter != nil {
		f = *filter
	}
	if f.Period == "" {
		f.Period = entity.PeriodWeekly
	}
	if f.Country == "" {
		f.Country = srv.cfg.DefaultCountry
	}

	return f
}

// GetTopReviewers counts ratings per customer over the popularity window.
func (srv *rankingService) GetTopReviewers(ctx context.Context) ([]*entity.ReviewerRanking, error) {
	ratings, err := srv.recentRatings(ctx)
	if err != nil {
		return nil, err
	}

	emails, counts := countBy(ratings, func(r *entity.Rating) string { return r.CustomerEmail })

	reviewers := make([]*entity.ReviewerRanking, 0, len(emails))
	for _, email := range emails {
		count := counts[email]
		badge := entity.BadgeActiveReviewer
		if count >= srv.cfg.BadgeThreshold {
			badge = entity.BadgeTopReviewer
		}
		reviewers = append(reviewers, &entity.ReviewerRanking{Email: email, RatingsCount: count, Badge: badge})
	}

	slices.SortStableFunc(reviewers, func(a, b *entity.ReviewerRanking) int {
		return cmp.Compare(b.RatingsCount, a.RatingsCount)
	})

	return truncate(reviewers, srv.cfg.PopularitySize), nil
}

// GetTopShops counts ratings per shop over the popularity window. The top
// entries are picked before resolving shops, so a removed shop shortens the list.
func (srv *rankingService) GetTopShops(ctx context.Context) ([]*entity.ShopPopularity, error) {
	ratings, err := srv.recentRatings(ctx)
	if err != nil {
		return nil, err
	}

	shopIDs, counts := countBy(ratings, func(r *entity.Rating) string { return r.ShopID })
	slices.SortStableFunc(shopIDs, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})

	result := make([]*entity.ShopPopularity, 0, srv.cfg.PopularitySize)
	for _, shopID := range truncate(shopIDs, srv.cfg.PopularitySize) {
		shop, err := srv.shopRepo.FindByID(ctx, shopID)
		if errors.Is(err, repository.ErrShopNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find shop")
		}

		count := counts[shopID]
		badge := entity.BadgePopularShop
		if count >= srv.cfg.BadgeThreshold {
			badge = entity.BadgeMostRatedShop
		}
		result = append(result, &entity.ShopPopularity{
			ShopID:          shop.ID,
			Name:            shop.Name,
			Location:        shop.Location,
			RatingsReceived: count,
			Badge:           badge,
		})
	}

	return result, nil
}

// recentRatings scans the whole store and keeps the ratings inside the popularity window.
func (srv *rankingService) recentRatings(ctx context.Context) ([]*entity.Rating, error) {
	all, err := srv.ratingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ratings")
	}

	cutoff := windowCutoff(srv.clock.Now(), srv.cfg.PopularityWindow)

	return slices.DeleteFunc(all, func(r *entity.Rating) bool {
		return !r.AcceptedAt.After(cutoff)
	}), nil
}

// countBy counts ratings per key and returns the keys in first-appearance order.
func countBy(ratings []*entity.Rating, key func(*entity.Rating) string) ([]string, map[string]int) {
	var order []string
	counts := make(map[string]int)
	for _, rating := range ratings {
		k := key(rating)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	return order, counts
}

func truncate[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}

	return items
}
