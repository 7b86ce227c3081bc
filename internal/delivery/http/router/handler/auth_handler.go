// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/delivery/http/response"
	"passport/internal/usecase"
)

// --- Request bodies ---
// The validate tags bound the transport only: required-ness and format rules
// live in the service layer with their exact messages. Passwords are capped at
// 72 bytes, the most bcrypt will read.

type registerRequest struct {
	Name            string `json:"name" validate:"omitempty,max=100"`
	Email           string `json:"email" validate:"omitempty,max=254"`
	Password        string `json:"password" validate:"omitempty,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"omitempty,max=254"`
	Password string `json:"password" validate:"omitempty,max=72"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"omitempty,max=72"`
	NewPassword     string `json:"newPassword" validate:"omitempty,max=72"`
}

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// token and user ride at the top level of the envelope, next to
	// success and message.
	return response.SuccessWith(c, http.StatusCreated, "User registered successfully", map[string]any{
		"token": output.Token,
		"user":  output.Account,
	})
}

// Login handles the account login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWith(c, http.StatusOK, "Login successful", map[string]any{
		"token": output.Token,
		"user":  output.Account,
	})
}

// Logout acknowledges the logout. Tokens are stateless and expire on their
// own; discarding the token is the client's responsibility.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// ChangePassword handles the password change request for the authenticated account.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.ChangePassword(c.Request().Context(), identity.ID, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}
