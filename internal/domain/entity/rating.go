package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category names a scored aspect of a visit.
type Category string

const (
	CategoryFoodQuality       Category = "food_quality"
	CategoryHygiene           Category = "hygiene"
	CategoryService           Category = "service"
	CategoryValueForMoney     Category = "value_for_money"
	CategoryOverallExperience Category = "overall_experience"
)

// Categories lists every scored category in presentation order.
var Categories = []Category{
	CategoryFoodQuality,
	CategoryHygiene,
	CategoryService,
	CategoryValueForMoney,
	CategoryOverallExperience,
}

// Scores holds the five category scores of a single visit.
type Scores struct {
	FoodQuality       int
	Hygiene           int
	Service           int
	ValueForMoney     int
	OverallExperience int
}

// Get returns the score for a category.
func (s Scores) Get(c Category) int {
	switch c {
	case CategoryFoodQuality:
		return s.FoodQuality
	case CategoryHygiene:
		return s.Hygiene
	case CategoryService:
		return s.Service
	case CategoryValueForMoney:
		return s.ValueForMoney
	case CategoryOverallExperience:
		return s.OverallExperience
	default:
		return 0
	}
}

// Rating is an accepted customer rating. It is immutable once stored.
type Rating struct {
	ID                uuid.UUID // Store-assigned identifier.
	CustomerEmail     string    // Email of the rating customer.
	ShopID            string    // Rated shop.
	Scores            Scores    // Category scores, each within the configured scale.
	CustomerLatitude  float64   // Customer position at submission time.
	CustomerLongitude float64
	AcceptedAt        time.Time // Store-assigned acceptance time (UTC).
}
