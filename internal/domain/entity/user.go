package entity

import "time"

// User is a registered account. The email is the natural key.
type User struct {
	Email        string    // Unique login and reviewer identity.
	PasswordHash string    // bcrypt hash, never the plaintext.
	UserType     UserType  // customer or shop_owner.
	CreatedAt    time.Time // Registration time.
}
