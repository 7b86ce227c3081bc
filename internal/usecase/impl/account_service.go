package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the public view of the requested account.
func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*usecase.AccountView, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	view := usecase.NewAccountView(account)

	return &view, nil
}

// UpdateProfile applies a partial update to the account's name and/or email.
// Fields absent from the input are left untouched.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdateProfileInput) (*usecase.AccountView, error) {
	if err := validateUpdateProfileInput(input); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account for profile update")
	}

	if input.Name != nil {
		account.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		account.Email = normalizeEmail(*input.Email)
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Profile update rejected, email already registered", slog.Any("accountID", accountID))

			return nil, domainerrors.ErrAccountExists
		}
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("accountID", accountID))

	view := usecase.NewAccountView(account)

	return &view, nil
}

// List returns one page of accounts ordered by creation time.
func (srv *accountService) List(ctx context.Context, input usecase.ListAccountsInput) (*usecase.ListAccountsOutput, error) {
	page, limit := normalizePagination(input)

	total, err := srv.accountRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	accounts, err := srv.accountRepo.ListPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	views := make([]usecase.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, usecase.NewAccountView(account))
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &usecase.ListAccountsOutput{
		Accounts: views,
		Pagination: usecase.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}
