package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"
)

func newGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_GetProfile(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	identity := entity.Identity{ID: uuid.New(), Email: "test@example.com", Role: entity.RoleUser}
	view := testAccountView("test@example.com")
	view.ID = identity.ID

	c, rec := newGetContext("/api/users/profile")
	deliverycontext.SetIdentity(c, identity)

	uc.On("GetProfile", c.Request().Context(), identity.ID).Return(&view, nil)

	err := h.GetProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), identity.ID.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_GetProfile_NoIdentity(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newGetContext("/api/users/profile")

	err := h.GetProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	identity := entity.Identity{ID: uuid.New(), Email: "old@example.com", Role: entity.RoleUser}
	updated := testAccountView("new@example.com")
	updated.ID = identity.ID

	body := `{"email":"new@example.com"}`
	c, rec := newJSONContext(http.MethodPut, "/api/users/profile", body)
	deliverycontext.SetIdentity(c, identity)

	email := "new@example.com"
	uc.On("UpdateProfile", c.Request().Context(), identity.ID, usecase.UpdateProfileInput{
		Email: &email,
	}).Return(&updated, nil)

	err := h.UpdateProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile updated successfully")
	assert.Contains(t, rec.Body.String(), `"email":"new@example.com"`)
}

func TestAccountHandler_List(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	c, rec := newGetContext("/api/users?page=2&limit=5")

	uc.On("List", c.Request().Context(), usecase.ListAccountsInput{Page: 2, Limit: 5}).
		Return(&usecase.ListAccountsOutput{
			Accounts: []usecase.AccountView{testAccountView("a@example.com")},
			Pagination: usecase.Pagination{
				Page:  2,
				Limit: 5,
				Total: 6,
				Pages: 2,
			},
		}, nil)

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// data is the page itself; pagination rides alongside it, not inside.
	body := decodeBody(t, rec)
	accounts, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, accounts, 1)
	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(6), pagination["total"])
	assert.Equal(t, float64(2), pagination["pages"])
	assert.NotContains(t, body, "users")
}

func TestAccountHandler_UpdateProfile_OversizedEmailRejected(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	identity := entity.Identity{ID: uuid.New(), Email: "old@example.com", Role: entity.RoleUser}
	email := strings.Repeat("a", 250) + "@example.com"
	c, rec := newJSONContext(http.MethodPut, "/api/users/profile", `{"email":"`+email+`"}`)
	deliverycontext.SetIdentity(c, identity)

	err := h.UpdateProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_List_InvalidParams(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	cases := []struct {
		name    string
		target  string
		message string
	}{
		{name: "non-numeric page", target: "/api/users?page=abc", message: "Page must be a positive number"},
		{name: "zero page", target: "/api/users?page=0", message: "Page must be a positive number"},
		{name: "zero limit", target: "/api/users?limit=0", message: "Limit must be between 1 and 100"},
		{name: "oversized limit", target: "/api/users?limit=500", message: "Limit must be between 1 and 100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newGetContext(tc.target)

			err := h.List(c)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.message, appErr.Message())
		})
	}
}
