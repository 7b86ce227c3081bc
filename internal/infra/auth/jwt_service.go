package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

// defaultTTL applies when no token lifetime is configured.
const defaultTTL = time.Hour * 24 * 7

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.SecretKey.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Secret,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token embedding the identity's id, email and role,
// expiring ttl from now.
func (s *jwtService) Issue(identity entity.Identity) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: identity.Email,
		Role:  identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature integrity and expiry, and decodes the identity.
// The returned error is one of the three service-level token errors so
// callers can tell the failure kinds apart without parsing messages.
func (s *jwtService) Verify(tokenString string) (entity.Identity, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return entity.Identity{}, classifyTokenError(err)
	}
	if !token.Valid {
		return entity.Identity{}, service.ErrTokenSignatureInvalid
	}

	userID, err := claims.UserID()
	if err != nil {
		return entity.Identity{}, service.ErrTokenMalformed
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		// A missing or unknown role claim defaults to the regular role.
		role = entity.RoleUser
	}

	return entity.Identity{
		ID:    userID,
		Email: claims.Email,
		Role:  role,
	}, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

// classifyTokenError folds the jwt library's error tree into the domain's
// three verification failure kinds.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	default:
		return service.ErrTokenMalformed
	}
}
