package impl

import (
	"regexp"
	"strings"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

// emailPattern rejects whitespace and '@' inside the local and domain parts
// and requires a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail canonicalizes an email address for storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// validateRegisterInput checks a registration request field by field and
// returns the first failure as a client-facing validation error.
func validateRegisterInput(input usecase.RegisterInput) error {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return domainerrors.NewValidationError("All fields are required")
	}

	if len(strings.TrimSpace(input.Name)) < minNameLength {
		return domainerrors.NewValidationError("Name must be at least 2 characters")
	}

	if !validEmail(input.Email) {
		return domainerrors.NewValidationError("Please provide a valid email")
	}

	if len(input.Password) < minPasswordLength {
		return domainerrors.NewValidationError("Password must be at least 6 characters")
	}

	if input.Password != input.ConfirmPassword {
		return domainerrors.NewValidationError("Passwords do not match")
	}

	return nil
}

func validateLoginInput(input usecase.LoginInput) error {
	if input.Email == "" || input.Password == "" {
		return domainerrors.NewValidationError("Email and password are required")
	}

	return nil
}

func validateChangePasswordInput(input usecase.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerrors.NewValidationError("All fields are required")
	}

	if len(input.NewPassword) < minPasswordLength {
		return domainerrors.NewValidationError("Password must be at least 6 characters")
	}

	return nil
}

// validateUpdateProfileInput checks only the fields present in a partial update.
func validateUpdateProfileInput(input usecase.UpdateProfileInput) error {
	if input.Name != nil && len(strings.TrimSpace(*input.Name)) < minNameLength {
		return domainerrors.NewValidationError("Name must be at least 2 characters")
	}

	if input.Email != nil && !validEmail(*input.Email) {
		return domainerrors.NewValidationError("Please provide a valid email")
	}

	return nil
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePagination applies defaults and clamps out-of-range values.
func normalizePagination(input usecase.ListAccountsInput) (page, limit int) {
	page = input.Page
	if page < 1 {
		page = defaultPage
	}

	limit = input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}
