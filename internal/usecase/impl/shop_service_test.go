package impl

import (
	"context"
	"testing"

	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/repository"
	mockRepo "shopscore/internal/mocks/repository"
	mockSvc "shopscore/internal/mocks/service"
	"shopscore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixtures struct {
	service   usecase.ShopUsecase
	shopRepo  *mockRepo.MockShopRepository
	userRepo  *mockRepo.MockUserRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	f := shopServiceFixtures{
		shopRepo:  mockRepo.NewMockShopRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		qrService: mockSvc.NewMockQRCodeService(t),
	}
	f.service = NewShopService(ShopServiceParams{
		ShopRepo:  f.shopRepo,
		UserRepo:  f.userRepo,
		QRService: f.qrService,
		Logger:    newDiscardLogger(),
	})

	return f
}

func validShopInput() *usecase.AddShopInput {
	return &usecase.AddShopInput{
		Name:       "Dosa Corner",
		Location:   "Indiranagar",
		Latitude:   shopLat,
		Longitude:  shopLng,
		FoodType:   "south indian",
		Contact:    "+91 98450 00000",
		OwnerEmail: "owner@example.com",
	}
}

func TestShopService_AddShop_Success(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().Exists(ctx, "owner@example.com").Return(true, nil)
	f.shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).
		Run(func(_ context.Context, shop *entity.Shop) { shop.ID = "shop_1" }).
		Return(nil)
	f.qrService.EXPECT().GenerateShopQR("shop_1").Return([]byte("png"), nil)

	out, err := f.service.AddShop(ctx, validShopInput())
	require.NoError(t, err)
	assert.Equal(t, "shop_1", out.Shop.ID)
	assert.Equal(t, "Dosa Corner", out.Shop.Name)
	assert.Equal(t, "owner@example.com", out.Shop.OwnerEmail)
	assert.Equal(t, []byte("png"), out.QRCode)
}

func TestShopService_AddShop_OwnerNotFound(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().Exists(ctx, "owner@example.com").Return(false, nil)

	_, err := f.service.AddShop(ctx, validShopInput())
	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestShopService_AddShop_InvalidInput(t *testing.T) {
	f := createTestShopService(t)

	noName := validShopInput()
	noName.Name = "  "
	_, err := f.service.AddShop(context.Background(), noName)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	badLng := validShopInput()
	badLng.Longitude = 190
	_, err = f.service.AddShop(context.Background(), badLng)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestShopService_AddShop_QRFailureKeepsShop(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().Exists(ctx, "owner@example.com").Return(true, nil)
	f.shopRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, shop *entity.Shop) { shop.ID = "shop_1" }).
		Return(nil)
	f.qrService.EXPECT().GenerateShopQR("shop_1").Return(nil, errors.New("encoder failed"))

	out, err := f.service.AddShop(ctx, validShopInput())
	require.NoError(t, err)
	assert.Equal(t, "shop_1", out.Shop.ID)
	assert.Nil(t, out.QRCode)
}

func TestShopService_GetShopQR(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.shopRepo.EXPECT().FindByID(ctx, "shop_1").Return(&entity.Shop{ID: "shop_1"}, nil)
	f.qrService.EXPECT().GenerateShopQR("shop_1").Return([]byte("png"), nil)
	f.shopRepo.EXPECT().FindByID(ctx, "shop_9").Return(nil, repository.ErrShopNotFound)

	qr, err := f.service.GetShopQR(ctx, "shop_1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)

	_, err = f.service.GetShopQR(ctx, "shop_9")
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_ListShops(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	shops := []*entity.Shop{{ID: "shop_1"}, {ID: "shop_2"}}

	f.shopRepo.EXPECT().List(ctx).Return(shops, nil)

	got, err := f.service.ListShops(ctx)
	require.NoError(t, err)
	assert.Equal(t, shops, got)
}
