// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	emailSender  service.EmailSender
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	EmailSender  service.EmailSender
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		emailSender:  params.EmailSender,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Early duplicate check gives a friendly rejection before the expensive
	// hash; the database constraint still catches concurrent races.
	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", email))

		return nil, domainerrors.ErrAccountExists
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		// A concurrent registration may have won the race since the early
		// check; surface it identically to the early rejection.
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration lost duplicate race", slog.String("email", email))

			return nil, domainerrors.ErrAccountExists
		}

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	token, err := srv.tokenService.Issue(entity.Identity{
		ID:    newAccount.ID,
		Email: newAccount.Email,
		Role:  newAccount.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during registration")
	}

	srv.sendWelcomeEmail(ctx, newAccount)

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: usecase.NewAccountView(newAccount),
	}, nil
}

// sendWelcomeEmail delivers the greeting on a best-effort basis. Delivery
// failures are logged and never fail the registration.
func (srv *authService) sendWelcomeEmail(ctx context.Context, account *entity.Account) {
	if srv.emailSender == nil {
		return
	}

	if err := srv.emailSender.SendWelcome(ctx, account.Email, account.Name); err != nil {
		srv.log(ctx).Warn("Failed to send welcome email",
			slog.Any("accountID", account.ID),
			slog.Any("error", err),
		)
	}
}

// Login orchestrates the account login process.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := validateLoginInput(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Same rejection as a wrong password so the response does not
			// reveal whether the email is registered.
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(entity.Identity{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: usecase.NewAccountView(account),
	}, nil
}

// ChangePassword verifies the current password and stores a hash of the new
// one. Tokens issued before the change remain valid until they expire.
func (srv *authService) ChangePassword(ctx context.Context, accountID uuid.UUID, input usecase.ChangePasswordInput) error {
	if err := validateChangePasswordInput(input); err != nil {
		return err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("accountID", accountID))

		return domainerrors.ErrPasswordIncorrect
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	account.PasswordHash = hashedPassword
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", accountID))

	return nil
}
