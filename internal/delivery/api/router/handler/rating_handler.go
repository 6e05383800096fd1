// Package handler contains the echo handlers of the public API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shopscore/internal/delivery/api/response"
	"shopscore/internal/domain/entity"
	"shopscore/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC    usecase.RatingUsecase
	ScorecardUC usecase.ScorecardUsecase
	RankingUC   usecase.RankingUsecase
	Logger      *slog.Logger
}

// RatingHandler serves rating submission, scorecards and rankings
type RatingHandler struct {
	ratingUC    usecase.RatingUsecase
	scorecardUC usecase.ScorecardUsecase
	rankingUC   usecase.RankingUsecase
	logger      *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC:    params.RatingUC,
		scorecardUC: params.ScorecardUC,
		rankingUC:   params.RankingUC,
		logger:      params.Logger,
	}
}

// RateShopRequest represents the request body for rating a shop
type RateShopRequest struct {
	CustomerEmail     string  `json:"customer_email" validate:"required,email"`
	ShopID            string  `json:"shop_id" validate:"required"`
	FoodQuality       int     `json:"food_quality"`
	Hygiene           int     `json:"hygiene"`
	Service           int     `json:"service"`
	ValueForMoney     int     `json:"value_for_money"`
	OverallExperience int     `json:"overall_experience"`
	CustomerLat       float64 `json:"customer_lat"` // range checked by the rating gate (INVALID_INPUT)
	CustomerLon       float64 `json:"customer_lon"`
}

// RateShopResponse is returned for an accepted rating
type RateShopResponse struct {
	Message    string    `json:"message"`
	RatingID   string    `json:"rating_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}

// RateShop handles POST /rate_shop
func (h *RatingHandler) RateShop(c echo.Context) error {
	var req RateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	rating, err := h.ratingUC.SubmitRating(c.Request().Context(), &usecase.SubmitRatingInput{
		CustomerEmail:     req.CustomerEmail,
		ShopID:            req.ShopID,
		FoodQuality:       req.FoodQuality,
		Hygiene:           req.Hygiene,
		Service:           req.Service,
		ValueForMoney:     req.ValueForMoney,
		OverallExperience: req.OverallExperience,
		CustomerLatitude:  req.CustomerLat,
		CustomerLongitude: req.CustomerLon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RateShopResponse{
		Message:    "Rating submitted successfully",
		RatingID:   rating.ID.String(),
		AcceptedAt: rating.AcceptedAt,
	})
}

// GetScorecard handles GET /shops/:id/scorecard
func (h *RatingHandler) GetScorecard(c echo.Context) error {
	card, err := h.scorecardUC.GetScorecard(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// GetRankings handles GET /rankings
func (h *RatingHandler) GetRankings(c echo.Context) error {
	filter := &usecase.RankingFilter{
		Location: c.QueryParam("location"),
		City:     c.QueryParam("city"),
		State:    c.QueryParam("state"),
		Country:  c.QueryParam("country"),
		Period:   entity.Period(c.QueryParam("period")),
	}

	rankings, err := h.rankingUC.GetRankings(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rankings)
}

// GetTopReviewers handles GET /top_reviewers
func (h *RatingHandler) GetTopReviewers(c echo.Context) error {
	reviewers, err := h.rankingUC.GetTopReviewers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviewers)
}

// GetTopShops handles GET /top_shops
func (h *RatingHandler) GetTopShops(c echo.Context) error {
	shops, err := h.rankingUC.GetTopShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}
