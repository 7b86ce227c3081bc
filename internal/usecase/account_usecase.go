package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// AccountView is the public projection of an account. It structurally cannot
// carry the password hash, so no serialization path can leak it.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAccountView projects a domain account into its public view.
func NewAccountView(account *entity.Account) AccountView {
	return AccountView{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// UpdateProfileInput defines the data for a partial profile update. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

// ListAccountsInput carries the pagination parameters for listing accounts.
type ListAccountsInput struct {
	Page  int
	Limit int
}

// Pagination describes the window of a listed page.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ListAccountsOutput returns one page of accounts plus the paging metadata.
type ListAccountsOutput struct {
	Accounts   []AccountView
	Pagination Pagination
}

// AccountUsecase defines the interface for account profile operations.
type AccountUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*AccountView, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input UpdateProfileInput) (*AccountView, error)
	List(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error)
}
