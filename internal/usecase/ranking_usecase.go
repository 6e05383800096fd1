package usecase

import (
	"context"

	"shopscore/internal/domain/entity"
)

// RankingFilter narrows the shop leaderboard.
// City, State and Country are accepted for compatibility and do not filter.
type RankingFilter struct {
	Location string
	City     string
	State    string
	Country  string
	Period   entity.Period
}

// RankingUsecase computes leaderboards and popularity rankings.
type RankingUsecase interface {
	// GetRankings returns shops ordered by mean overall experience within the period.
	// Shops without ratings in the period are left out.
	GetRankings(ctx context.Context, filter *RankingFilter) ([]*entity.ShopRanking, error)

	// GetTopReviewers returns the most active customers over the popularity window.
	GetTopReviewers(ctx context.Context) ([]*entity.ReviewerRanking, error)

	// GetTopShops returns the most rated shops over the popularity window.
	GetTopShops(ctx context.Context) ([]*entity.ShopPopularity, error)
}
