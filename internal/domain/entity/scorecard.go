package entity

import "time"

// Period is a trailing aggregation window.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// IsValid checks if the Period is one of the supported windows.
func (p Period) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	default:
		return false
	}
}

// Window returns the trailing duration covered by the period.
func (p Period) Window() time.Duration {
	switch p {
	case PeriodWeekly:
		return 7 * 24 * time.Hour
	case PeriodMonthly:
		return 30 * 24 * time.Hour
	case PeriodYearly:
		return 365 * 24 * time.Hour
	default:
		return 0
	}
}

// CategoryAverages maps each category to its mean score rounded to 2 decimals.
type CategoryAverages struct {
	FoodQuality       float64 `json:"food_quality"`
	Hygiene           float64 `json:"hygiene"`
	Service           float64 `json:"service"`
	ValueForMoney     float64 `json:"value_for_money"`
	OverallExperience float64 `json:"overall_experience"`
}

// Set stores the average for a category.
func (a *CategoryAverages) Set(c Category, v float64) {
	switch c {
	case CategoryFoodQuality:
		a.FoodQuality = v
	case CategoryHygiene:
		a.Hygiene = v
	case CategoryService:
		a.Service = v
	case CategoryValueForMoney:
		a.ValueForMoney = v
	case CategoryOverallExperience:
		a.OverallExperience = v
	}
}

// Scorecard is the per-window view of a shop's averages.
// An empty window averages to zero in every category.
type Scorecard struct {
	Weekly  CategoryAverages `json:"weekly"`
	Monthly CategoryAverages `json:"monthly"`
	Yearly  CategoryAverages `json:"yearly"`
}
