package impl

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAccount(email string) *entity.Account {
	now := time.Now()

	return &entity.Account{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
