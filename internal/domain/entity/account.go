// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity of the system, representing a registered person.
// PasswordHash holds the salted bcrypt digest of the account's secret; it is
// never serialized into any external response (see usecase.AccountView).
type Account struct {
	ID           uuid.UUID // The unique identifier for the account, assigned at creation.
	Name         string    // The account's display name.
	Email        string    // The normalized (trimmed, lowercased) login email; unique across accounts.
	PasswordHash string    // Salted one-way hash of the password. Never the plaintext secret.
	Role         Role      // Authorization role; defaults to RoleUser.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the request-scoped authenticated identity decoded from a
// verified token. It lives only for the duration of a single request.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  Role
}
