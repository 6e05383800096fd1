package impl

import (
	"context"
	"strconv"
	"time"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/errors"
	"shopscore/internal/usecase"

	"go.uber.org/fx"
)

type scorecardService struct {
	ratingRepo repository.RatingRepository
	shopRepo   repository.ShopRepository
	clock      service.Clock
}

// ScorecardServiceParams holds dependencies for ScorecardService, injected by Fx.
type ScorecardServiceParams struct {
	fx.In

	RatingRepo repository.RatingRepository
	ShopRepo   repository.ShopRepository
	Clock      service.Clock
}

// NewScorecardService is the constructor for scorecardService.
func NewScorecardService(params ScorecardServiceParams) usecase.ScorecardUsecase {
	return &scorecardService{
		ratingRepo: params.RatingRepo,
		shopRepo:   params.ShopRepo,
		clock:      params.Clock,
	}
}

// windowSums accumulates per-category totals for one trailing window.
type windowSums struct {
	cutoff time.Time
	totals [5]int
	count  int
}

func (w *windowSums) add(scores entity.Scores) {
	for i, category := range entity.Categories {
		w.totals[i] += scores.Get(category)
	}
	w.count++
}

func (w *windowSums) averages() entity.CategoryAverages {
	var avg entity.CategoryAverages
	if w.count == 0 {
		return avg
	}
	for i, category := range entity.Categories {
		avg.Set(category, roundScore(float64(w.totals[i])/float64(w.count)))
	}

	return avg
}

// GetScorecard computes all three windows in one pass over the shop's ratings.
func (srv *scorecardService) GetScorecard(ctx context.Context, shopID string) (*entity.Scorecard, error) {
	if _, err := srv.shopRepo.FindByID(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	ratings, err := srv.ratingRepo.FindByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop ratings")
	}

	now := srv.clock.Now()
	weekly := &windowSums{cutoff: windowCutoff(now, entity.PeriodWeekly.Window())}
	monthly := &windowSums{cutoff: windowCutoff(now, entity.PeriodMonthly.Window())}
	yearly := &windowSums{cutoff: windowCutoff(now, entity.PeriodYearly.Window())}

	for _, rating := range ratings {
		for _, w := range []*windowSums{weekly, monthly, yearly} {
			if rating.AcceptedAt.After(w.cutoff) {
				w.add(rating.Scores)
			}
		}
	}

	return &entity.Scorecard{
		Weekly:  weekly.averages(),
		Monthly: monthly.averages(),
		Yearly:  yearly.averages(),
	}, nil
}

// roundScore rounds a mean to two decimals by its exact binary value, with
// exact ties going to the even digit (2.125 -> 2.12, 2.675 -> 2.67).
func roundScore(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}

	return rounded
}
