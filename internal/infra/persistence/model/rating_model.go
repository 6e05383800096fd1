// Package model holds the GORM persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Score bounds enforced by the ratings table CHECK constraints below.
const (
	MinScore = 1
	MaxScore = 5
)

// RatingModel is the GORM-specific struct for the 'ratings' table.
// Seq preserves insertion order; AcceptedAt never decreases along Seq.
type RatingModel struct {
	Seq               int64     `gorm:"primaryKey;autoIncrement"`
	ID                uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerEmail     string    `gorm:"type:varchar(255);not null;index:idx_ratings_on_pair,priority:1"`
	ShopID            string    `gorm:"type:varchar(64);not null;index:idx_ratings_on_pair,priority:2;index:idx_ratings_on_shop"`
	FoodQuality       int       `gorm:"type:smallint;not null;check:food_quality BETWEEN 1 AND 5"`
	Hygiene           int       `gorm:"type:smallint;not null;check:hygiene BETWEEN 1 AND 5"`
	Service           int       `gorm:"type:smallint;not null;check:service BETWEEN 1 AND 5"`
	ValueForMoney     int       `gorm:"type:smallint;not null;check:value_for_money BETWEEN 1 AND 5"`
	OverallExperience int       `gorm:"type:smallint;not null;check:overall_experience BETWEEN 1 AND 5"`
	CustomerLatitude  float64   `gorm:"type:decimal(10,8);not null"`
	CustomerLongitude float64   `gorm:"type:decimal(11,8);not null"`
	AcceptedAt        time.Time `gorm:"not null;index:idx_ratings_on_accepted_at"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
