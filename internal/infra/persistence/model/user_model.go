package model

import "time"

// UserModel mirrors the 'users' table. The email is the primary key.
type UserModel struct {
	Email        string `gorm:"type:varchar(255);primaryKey"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	UserType     string `gorm:"type:varchar(32);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
