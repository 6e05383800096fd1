package handler

import (
	"log/slog"
	"net/http"

	"shopscore/internal/delivery/api/response"
	"shopscore/internal/domain/entity"
	"shopscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account registration
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	UserType string `json:"user_type" validate:"required,oneof=customer shop_owner"`
}

// Register handles POST /register
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
		UserType: entity.UserType(req.UserType),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"message":   "User registered successfully",
		"email":     user.Email,
		"user_type": user.UserType.String(),
	})
}
