// Package memory contains in-process implementations of the persistence layer.
package memory

import (
	"context"
	"sync"
	"time"

	"shopscore/internal/domain/entity"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"

	"github.com/google/uuid"
)

// RatingRepository keeps accepted ratings in insertion order with per-shop and
// per-(customer, shop) indexes into the backing slice.
type RatingRepository struct {
	mu      sync.RWMutex
	clock   service.Clock
	ratings []entity.Rating
	byShop  map[string][]int
	byPair  map[pairKey][]int
	last    time.Time
}

type pairKey struct {
	customerEmail string
	shopID        string
}

var _ repository.RatingRepository = (*RatingRepository)(nil)

// NewRatingRepository creates an empty rating store.
func NewRatingRepository(clock service.Clock) *RatingRepository {
	repo := &RatingRepository{clock: clock}
	repo.Reset()

	return repo
}

// Reset drops every stored rating.
func (r *RatingRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings = nil
	r.byShop = make(map[string][]int)
	r.byPair = make(map[pairKey][]int)
	r.last = time.Time{}
}

// Append stores rating with a fresh ID and an acceptance time that never
// goes backwards, even if the clock does.
func (r *RatingRepository) Append(_ context.Context, rating *entity.Rating) (*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *rating
	stored.ID = uuid.New()
	stored.AcceptedAt = r.clock.Now().UTC()
	if stored.AcceptedAt.Before(r.last) {
		stored.AcceptedAt = r.last
	}
	r.last = stored.AcceptedAt

	idx := len(r.ratings)
	r.ratings = append(r.ratings, stored)
	r.byShop[stored.ShopID] = append(r.byShop[stored.ShopID], idx)
	key := pairKey{customerEmail: stored.CustomerEmail, shopID: stored.ShopID}
	r.byPair[key] = append(r.byPair[key], idx)

	return &stored, nil
}

// FindByShop returns every rating of a shop in insertion order.
func (r *RatingRepository) FindByShop(_ context.Context, shopID string) ([]*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.byShop[shopID]), nil
}

// FindByCustomerAndShop returns every rating a customer gave a shop in insertion order.
func (r *RatingRepository) FindByCustomerAndShop(_ context.Context, customerEmail, shopID string) ([]*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.byPair[pairKey{customerEmail: customerEmail, shopID: shopID}]), nil
}

// FindAll returns every rating in insertion order.
func (r *RatingRepository) FindAll(_ context.Context) ([]*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Rating, 0, len(r.ratings))
	for i := range r.ratings {
		rating := r.ratings[i]
		out = append(out, &rating)
	}

	return out, nil
}

// FindSince returns ratings accepted strictly after cutoff. AcceptedAt is
// non-decreasing along the slice, so the scan starts at the first match.
func (r *RatingRepository) FindSince(_ context.Context, cutoff time.Time) ([]*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := len(r.ratings)
	for start > 0 && r.ratings[start-1].AcceptedAt.After(cutoff) {
		start--
	}

	out := make([]*entity.Rating, 0, len(r.ratings)-start)
	for i := start; i < len(r.ratings); i++ {
		rating := r.ratings[i]
		out = append(out, &rating)
	}

	return out, nil
}

func (r *RatingRepository) collect(indexes []int) []*entity.Rating {
	out := make([]*entity.Rating, 0, len(indexes))
	for _, idx := range indexes {
		rating := r.ratings[idx]
		out = append(out, &rating)
	}

	return out
}
