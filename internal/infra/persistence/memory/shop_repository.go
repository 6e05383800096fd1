package memory

import (
	"context"
	"strconv"
	"sync"

	"shopscore/internal/domain/entity"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
)

// ShopRepository is an insertion-ordered shop catalog.
type ShopRepository struct {
	mu    sync.RWMutex
	clock service.Clock
	order []string
	shops map[string]entity.Shop
}

var _ repository.ShopRepository = (*ShopRepository)(nil)

// NewShopRepository creates an empty shop catalog.
func NewShopRepository(clock service.Clock) *ShopRepository {
	return &ShopRepository{
		clock: clock,
		shops: make(map[string]entity.Shop),
	}
}

// Create assigns "shop_<n>" where n is the catalog size after insertion.
func (r *ShopRepository) Create(_ context.Context, shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop.ID = "shop_" + strconv.Itoa(len(r.order)+1)
	shop.CreatedAt = r.clock.Now()

	r.order = append(r.order, shop.ID)
	r.shops[shop.ID] = *shop

	return nil
}

// FindByID resolves a shop by identifier.
func (r *ShopRepository) FindByID(_ context.Context, id string) (*entity.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shop, ok := r.shops[id]
	if !ok {
		return nil, repository.ErrShopNotFound
	}

	return &shop, nil
}

// List returns every shop in registration order.
func (r *ShopRepository) List(_ context.Context) ([]*entity.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Shop, 0, len(r.order))
	for _, id := range r.order {
		shop := r.shops[id]
		out = append(out, &shop)
	}

	return out, nil
}
