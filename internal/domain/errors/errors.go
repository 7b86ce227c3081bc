// Package errors defines the application error taxonomy: each error carries
// an HTTP status, a stable business code and a client-safe message.
package errors

import (
	"net/http"

	"passport/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrValidationFailed is the base for malformed or missing input. Use
	// WithDetails / NewValidationError to carry the human-readable reason.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// ErrAccountExists covers both the early duplicate lookup and a late
	// duplicate insert rejected by the store.
	ErrAccountExists = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_EXISTS",
		"User already exists",
		"",
	)

	// ErrInvalidCredentials is deliberately identical for an unknown email
	// and a wrong password so the response leaks nothing about which failed.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Not authorized to access this route",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Role is not authorized to access this route",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"User not found",
		"",
	)

	ErrPasswordIncorrect = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_INCORRECT",
		"Current password is incorrect",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewValidationError creates a validation failure whose client-facing message
// is the human-readable reason itself.
func NewValidationError(reason string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", reason, "")
}

// DatabaseExecuteError represents a storage execution failure, implementing
// the AppError interface. Raw store error text never reaches the client.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying store error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
