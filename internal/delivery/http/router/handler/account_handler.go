package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"
)

type updateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,max=254"`
}

// AccountHandler holds dependencies for account profile handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated account's own profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	view, err := h.uc.GetProfile(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile retrieved successfully")
}

// UpdateProfile applies a partial update to the authenticated account's
// name and/or email.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.uc.UpdateProfile(c.Request().Context(), identity.ID, usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile updated successfully")
}

// List returns a page of accounts. Available to any authenticated account.
func (h *AccountHandler) List(c echo.Context) error {
	page, err := parsePositiveQueryParam(c, "page")
	if err != nil {
		return errors.WithStack(domainerrors.NewValidationError("Page must be a positive number"))
	}

	limit, err := parsePositiveQueryParam(c, "limit")
	if err != nil || limit > 100 {
		return errors.WithStack(domainerrors.NewValidationError("Limit must be between 1 and 100"))
	}

	output, err := h.uc.List(c.Request().Context(), usecase.ListAccountsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// data carries the page itself; pagination is its sibling, not nested
	// under it.
	return response.SuccessWith(c, http.StatusOK, "Users retrieved successfully", map[string]any{
		"data":       output.Accounts,
		"pagination": output.Pagination,
	})
}

// parsePositiveQueryParam parses an optional positive integer query
// parameter, returning zero when it is absent.
func parsePositiveQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, errors.Errorf("invalid %s parameter", name)
	}

	return value, nil
}
