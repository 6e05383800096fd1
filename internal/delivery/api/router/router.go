// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopscore/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RatingHandler *handler.RatingHandler
	ShopHandler   *handler.ShopHandler
	UserHandler   *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	ratingHandler *handler.RatingHandler
	shopHandler   *handler.ShopHandler
	userHandler   *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ratingHandler: params.RatingHandler,
		shopHandler:   params.ShopHandler,
		userHandler:   params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Accounts
	e.POST("/register", r.userHandler.Register)

	// Shop catalog
	e.POST("/add_shop", r.shopHandler.AddShop)
	e.GET("/shops", r.shopHandler.ListShops)
	shopGroup := e.Group("/shops/:id")
	{
		shopGroup.GET("/qr", r.shopHandler.GetShopQR)
		shopGroup.GET("/scorecard", r.ratingHandler.GetScorecard)
	}

	// Ratings and rankings
	e.POST("/rate_shop", r.ratingHandler.RateShop)
	e.GET("/rankings", r.ratingHandler.GetRankings)
	e.GET("/top_reviewers", r.ratingHandler.GetTopReviewers)
	e.GET("/top_shops", r.ratingHandler.GetTopShops)
}
