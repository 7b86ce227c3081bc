// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"passport/config"
	"passport/internal/domain/service"
)

// defaultCost is the fixed bcrypt work factor used when none is configured.
const defaultCost = 10

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the configured cost.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost. Useful in
// tests where a lower cost keeps hashing fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation and encodes salt and cost into the output.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash. The comparison is
// constant time; any error, including a malformed stored hash, reads as a
// mismatch rather than a failure.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
