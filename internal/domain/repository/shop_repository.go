package repository

import (
	"context"

	"shopscore/internal/domain/entity"
	"shopscore/internal/errors"
)

// ErrShopNotFound is returned when a shop identifier does not resolve.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository is the shop catalog. Shops keep their registration order.
type ShopRepository interface {
	// Create assigns the next sequential identifier ("shop_<n>") and persists the shop.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID resolves a shop. Returns ErrShopNotFound if it does not exist.
	FindByID(ctx context.Context, id string) (*entity.Shop, error)

	// List returns every shop in registration order.
	List(ctx context.Context) ([]*entity.Shop, error)
}
