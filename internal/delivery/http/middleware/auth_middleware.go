package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the decoded identity on
// the context. The failure kind (malformed, bad signature, expired) is logged
// but the client always receives the same generic rejection.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		tokenString := authHeader[len(bearerPrefix):]
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		identity, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			m.logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "Token verification failed",
				slog.String("kind", tokenFailureKind(err)),
				slog.String("path", c.Request().URL.Path),
			)

			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that rejects identities whose role is
// not in the allowed set. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !entity.Roles(allowed).Contains(identity.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func tokenFailureKind(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrTokenSignatureInvalid):
		return "signature"
	default:
		return "malformed"
	}
}
