// Package service defines interfaces for core, stateless domain logic.
// Implementations live under internal/infra.
package service

// PasswordHasher hashes account passwords at registration.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
