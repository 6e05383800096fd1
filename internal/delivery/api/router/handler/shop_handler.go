package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"shopscore/internal/delivery/api/response"
	"shopscore/internal/domain/entity"
	"shopscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler serves the shop catalog
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// AddShopRequest represents the request body for registering a shop
type AddShopRequest struct {
	Name       string  `json:"name" validate:"required"`
	Location   string  `json:"location" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	FoodType   string  `json:"food_type"`
	Contact    string  `json:"contact"`
	OwnerEmail string  `json:"owner_email" validate:"required,email"`
}

// AddShopResponse is returned for a registered shop
type AddShopResponse struct {
	Message string `json:"message"`
	ShopID  string `json:"shop_id"`
	QRCode  string `json:"qr_code,omitempty"` // base64 PNG
}

// ShopResponse is the public view of a shop
type ShopResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	FoodType   string    `json:"food_type"`
	Contact    string    `json:"contact"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
}

func toShopResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:         shop.ID,
		Name:       shop.Name,
		Location:   shop.Location,
		Latitude:   shop.Latitude,
		Longitude:  shop.Longitude,
		FoodType:   shop.FoodType,
		Contact:    shop.Contact,
		OwnerEmail: shop.OwnerEmail,
		CreatedAt:  shop.CreatedAt,
	}
}

// AddShop handles POST /add_shop
func (h *ShopHandler) AddShop(c echo.Context) error {
	var req AddShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	out, err := h.shopUC.AddShop(c.Request().Context(), &usecase.AddShopInput{
		Name:       req.Name,
		Location:   req.Location,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		FoodType:   req.FoodType,
		Contact:    req.Contact,
		OwnerEmail: req.OwnerEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := AddShopResponse{
		Message: "Shop added successfully",
		ShopID:  out.Shop.ID,
	}
	if len(out.QRCode) > 0 {
		resp.QRCode = base64.StdEncoding.EncodeToString(out.QRCode)
	}

	return response.Success(c, http.StatusCreated, resp)
}

// ListShops handles GET /shops
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]ShopResponse, 0, len(shops))
	for _, shop := range shops {
		resp = append(resp, toShopResponse(shop))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetShopQR handles GET /shops/:id/qr and returns a PNG image
func (h *ShopHandler) GetShopQR(c echo.Context) error {
	qr, err := h.shopUC.GetShopQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", qr)
}
