package usecase

import (
	"context"

	"shopscore/internal/domain/entity"
)

// ScorecardUsecase computes time-windowed category averages for a shop.
type ScorecardUsecase interface {
	// GetScorecard returns weekly, monthly and yearly averages. Empty windows are zero.
	GetScorecard(ctx context.Context, shopID string) (*entity.Scorecard, error)
}
