// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the given identifier.
var ErrAccountNotFound = errors.New("account not found")

// ErrEmailTaken is returned by Create or Update when the normalized email is
// already bound to another account. The store enforces uniqueness atomically
// at insert time, so concurrent registrations cannot both succeed.
var ErrEmailTaken = errors.New("email already taken")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The store rejects a duplicate normalized
	// email with ErrEmailTaken in the same atomic step as the insert.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account. Returns ErrAccountNotFound when the
	// id is absent and ErrEmailTaken when an email change collides.
	Update(ctx context.Context, account *entity.Account) error

	// CountAll returns the total number of accounts.
	CountAll(ctx context.Context) (int64, error)

	// ListPage returns accounts ordered by creation time, skipping offset rows
	// and returning at most limit rows.
	ListPage(ctx context.Context, offset, limit int) ([]*entity.Account, error)
}
