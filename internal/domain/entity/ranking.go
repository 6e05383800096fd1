package entity

// Badges awarded by the popularity rankings.
const (
	BadgeTopReviewer    = "Top Reviewer"
	BadgeActiveReviewer = "Active Reviewer"
	BadgeMostRatedShop  = "Most Rated Shop"
	BadgePopularShop    = "Popular Shop"
)

// ShopRanking is a leaderboard row.
type ShopRanking struct {
	ShopID            string  `json:"shop_id"`
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	OverallExperience float64 `json:"overall_experience"`
}

// ReviewerRanking is a top-reviewer row.
type ReviewerRanking struct {
	Email        string `json:"email"`
	RatingsCount int    `json:"ratings_count"`
	Badge        string `json:"badge"`
}

// ShopPopularity is a top-shops-by-volume row.
type ShopPopularity struct {
	ShopID          string `json:"shop_id"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	RatingsReceived int    `json:"ratings_received"`
	Badge           string `json:"badge"`
}
