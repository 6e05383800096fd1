package usecase

import (
	"context"

	"shopscore/internal/domain/entity"
)

// AddShopInput represents the input for registering a shop
type AddShopInput struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	FoodType   string  `json:"food_type"`
	Contact    string  `json:"contact"`
	OwnerEmail string  `json:"owner_email"`
}

// AddShopOutput is the registered shop and its QR code
type AddShopOutput struct {
	Shop   *entity.Shop
	QRCode []byte
}

// ShopUsecase defines the interface for the shop catalog use cases
type ShopUsecase interface {
	// AddShop registers a shop for an existing owner and renders its QR code
	AddShop(ctx context.Context, input *AddShopInput) (*AddShopOutput, error)

	// ListShops returns every shop in registration order
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// GetShopQR renders the QR code of a registered shop
	GetShopQR(ctx context.Context, shopID string) ([]byte, error)
}
