package model

import "time"

// ShopModel is the GORM-specific struct for the 'shops' table.
// Seq backs the sequential "shop_<n>" identifier and the listing order.
type ShopModel struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Location   string    `gorm:"type:varchar(255);not null;index:idx_shops_on_location"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	FoodType   string    `gorm:"type:varchar(100)"`
	Contact    string    `gorm:"type:varchar(255)"`
	OwnerEmail string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
