// Package usecase defines the application's use cases.
package usecase

import (
	"context"

	"shopscore/internal/domain/entity"
)

// SubmitRatingInput is a customer's rating of a single visit.
type SubmitRatingInput struct {
	CustomerEmail     string  `json:"customer_email"`
	ShopID            string  `json:"shop_id"`
	FoodQuality       int     `json:"food_quality"`
	Hygiene           int     `json:"hygiene"`
	Service           int     `json:"service"`
	ValueForMoney     int     `json:"value_for_money"`
	OverallExperience int     `json:"overall_experience"`
	CustomerLatitude  float64 `json:"customer_lat"`
	CustomerLongitude float64 `json:"customer_lon"`
}

// Scores returns the category scores of the input.
func (in *SubmitRatingInput) Scores() entity.Scores {
	return entity.Scores{
		FoodQuality:       in.FoodQuality,
		Hygiene:           in.Hygiene,
		Service:           in.Service,
		ValueForMoney:     in.ValueForMoney,
		OverallExperience: in.OverallExperience,
	}
}

// RatingUsecase is the rating eligibility gate.
type RatingUsecase interface {
	// SubmitRating stores the rating if the customer is close enough to the shop
	// and has not rated it within the cooldown. Exactly one rating is stored on
	// success and none on any error.
	SubmitRating(ctx context.Context, input *SubmitRatingInput) (*entity.Rating, error)
}
