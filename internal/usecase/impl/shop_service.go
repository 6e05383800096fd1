package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shopscore/internal/delivery/context"
	"shopscore/internal/domain/entity"
	domainerrors "shopscore/internal/domain/errors"
	"shopscore/internal/domain/geofence"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/errors"
	"shopscore/internal/usecase"

	"go.uber.org/fx"
)

type shopService struct {
	shopRepo  repository.ShopRepository
	userRepo  repository.UserRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo  repository.ShopRepository
	UserRepo  repository.UserRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shopRepo:  params.ShopRepo,
		userRepo:  params.UserRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddShop registers a shop under an existing owner. A QR rendering failure is
// logged and leaves the shop registered; the code can be fetched again later.
func (srv *shopService) AddShop(ctx context.Context, input *usecase.AddShopInput) (*usecase.AddShopOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("name is required")
	}
	if err := (geofence.Point{Lat: input.Latitude, Lng: input.Longitude}).Validate(); err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.Exists(ctx, input.OwnerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up owner")
	}
	if !exists {
		return nil, domainerrors.ErrOwnerNotFound
	}

	shop := &entity.Shop{
		Name:       input.Name,
		Location:   input.Location,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		FoodType:   input.FoodType,
		Contact:    input.Contact,
		OwnerEmail: input.OwnerEmail,
	}
	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}
	srv.log(ctx).Info("Shop registered", slog.String("shop_id", shop.ID), slog.String("owner", shop.OwnerEmail))

	qr, err := srv.qrService.GenerateShopQR(shop.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to generate shop QR code", slog.String("shop_id", shop.ID), slog.Any("error", err))
	}

	return &usecase.AddShopOutput{Shop: shop, QRCode: qr}, nil
}

// ListShops returns every shop in registration order.
func (srv *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// GetShopQR renders the QR code of a registered shop.
func (srv *shopService) GetShopQR(ctx context.Context, shopID string) ([]byte, error) {
	if _, err := srv.shopRepo.FindByID(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	qr, err := srv.qrService.GenerateShopQR(shopID)
	if err != nil {
		return nil, domainerrors.ErrQRCodeFailed.WrapMessage(err.Error())
	}

	return qr, nil
}
