package service

import (
	"errors"
	"time"

	"passport/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures are distinguishable internally even though the HTTP
// layer collapses them all into one generic unauthorized response.
var (
	// ErrTokenMalformed indicates the token is structurally invalid.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignatureInvalid indicates tampering or a secret mismatch.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired indicates a well-signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the account identifier.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are stateless: validity is determined purely by signature and expiry
// at verification time, never by a revocation store.
type TokenService interface {
	// Issue creates a signed token carrying the identity's id, email and role,
	// valid for the configured time-to-live.
	Issue(identity entity.Identity) (string, error)

	// Verify checks signature integrity and expiry, returning the decoded
	// identity on success. On failure the returned error matches exactly one
	// of ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
	Verify(tokenString string) (entity.Identity, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
