package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	mockSvc "passport/internal/mocks/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())
	c, _ := newAuthTestContext("")

	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())
	c, _ := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_EmptyToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())
	c, _ := newAuthTestContext("Bearer ")

	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

	// Every verification failure kind maps to the same client rejection.
	for _, verifyErr := range []error{
		service.ErrTokenMalformed,
		service.ErrTokenSignatureInvalid,
		service.ErrTokenExpired,
	} {
		c, _ := newAuthTestContext("Bearer some-token")
		tokenSvc.On("Verify", "some-token").Return(entity.Identity{}, verifyErr).Once()

		err := m.Authenticate(okHandler)(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	}
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

	identity := entity.Identity{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  entity.RoleUser,
	}
	c, rec := newAuthTestContext("Bearer good-token")
	tokenSvc.On("Verify", "good-token").Return(identity, nil)

	var seen entity.Identity
	err := m.Authenticate(func(c echo.Context) error {
		got, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		seen = got

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity, seen)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

	t.Run("role allowed", func(t *testing.T) {
		c, rec := newAuthTestContext("")
		deliverycontext.SetIdentity(c, entity.Identity{ID: uuid.New(), Role: entity.RoleAdmin})

		err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role denied", func(t *testing.T) {
		c, _ := newAuthTestContext("")
		deliverycontext.SetIdentity(c, entity.Identity{ID: uuid.New(), Role: entity.RoleUser})

		err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("identity missing", func(t *testing.T) {
		c, _ := newAuthTestContext("")

		err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
