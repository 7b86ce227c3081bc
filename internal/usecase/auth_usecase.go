// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change an account's password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the signed token and the account's public view after a
// successful registration or login.
type AuthOutput struct {
	Token   string
	Account AccountView
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	ChangePassword(ctx context.Context, accountID uuid.UUID, input ChangePasswordInput) error
}
