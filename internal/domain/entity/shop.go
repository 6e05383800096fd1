package entity

import "time"

// Shop is a registered food shop. It is read-only to the rating core.
type Shop struct {
	ID         string    // Registry-assigned identifier, e.g. "shop_3". Immutable.
	Name       string    // Display name.
	Location   string    // Free-text location label used by leaderboard filters.
	Latitude   float64   // WGS84 latitude in degrees.
	Longitude  float64   // WGS84 longitude in degrees.
	FoodType   string    // Food category, e.g. "street food".
	Contact    string    // Contact string as given by the owner.
	OwnerEmail string    // Email of the registering shop owner.
	CreatedAt  time.Time // Registration time.
}
