package repository

import (
	"context"
	"time"

	"shopscore/internal/domain/entity"
)

// RatingRepository is the append-only store of accepted ratings.
//
// Append assigns ID and AcceptedAt; AcceptedAt never decreases in insertion order.
// Readers receive copies, so a returned slice is a snapshot as of the call.
// The store does not enforce the cooldown itself: callers serialize the
// check-then-append sequence per (customer, shop) with a service.KeyLocker.
type RatingRepository interface {
	// Append stores a new rating and returns the stored value.
	Append(ctx context.Context, rating *entity.Rating) (*entity.Rating, error)

	// FindByShop returns every rating of a shop in insertion order.
	FindByShop(ctx context.Context, shopID string) ([]*entity.Rating, error)

	// FindByCustomerAndShop returns every rating a customer gave a shop in insertion order.
	FindByCustomerAndShop(ctx context.Context, customerEmail, shopID string) ([]*entity.Rating, error)

	// FindAll returns every rating in insertion order.
	FindAll(ctx context.Context) ([]*entity.Rating, error)

	// FindSince returns ratings accepted strictly after cutoff, in insertion order.
	FindSince(ctx context.Context, cutoff time.Time) ([]*entity.Rating, error)
}
