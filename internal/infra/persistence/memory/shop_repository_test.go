package memory

import (
	"context"
	"testing"

	"shopscore/internal/domain/entity"
	"shopscore/internal/domain/repository"
	"shopscore/internal/errors"
	"shopscore/internal/infra/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopRepository_SequentialIDsAndOrder(t *testing.T) {
	t.Parallel()

	repo := NewShopRepository(clock.NewManual(testStart))
	ctx := context.Background()

	for _, name := range []string{"Dosa Corner", "Chai Point", "Vada Pav Stall"} {
		require.NoError(t, repo.Create(ctx, &entity.Shop{Name: name}))
	}

	shops, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 3)
	assert.Equal(t, "shop_1", shops[0].ID)
	assert.Equal(t, "Chai Point", shops[1].Name)
	assert.Equal(t, "shop_3", shops[2].ID)

	shop, err := repo.FindByID(ctx, "shop_2")
	require.NoError(t, err)
	assert.Equal(t, "Chai Point", shop.Name)
	assert.Equal(t, testStart, shop.CreatedAt)

	_, err = repo.FindByID(ctx, "shop_4")
	assert.True(t, errors.Is(err, repository.ErrShopNotFound))
}

func TestUserRepository(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Email: "a@example.com", UserType: entity.UserTypeCustomer}
	require.NoError(t, repo.Create(ctx, user))
	assert.True(t, errors.Is(repo.Create(ctx, user), repository.ErrUserExists))

	ok, err := repo.Exists(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, "b@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.FindByEmail(ctx, "b@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
