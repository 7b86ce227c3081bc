package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"
)

func createTestAccountService(t *testing.T) (usecase.AccountUsecase, *mockRepo.MockAccountRepository) {
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return service, accountRepo
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount("test@example.com")

	accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)

	view, err := service.GetProfile(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.ID, view.ID)
	assert.Equal(t, account.Email, view.Email)
	assert.Equal(t, account.Name, view.Name)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	accountRepo.On("FindByID", ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := service.GetProfile(ctx, accountID)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_UpdateProfile_PartialUpdate(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount("old@example.com")

	accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		// Only the name changes; the email stays as stored.
		return a.Name == "New Name" && a.Email == "old@example.com"
	})).Return(nil)

	name := "  New Name  "
	view, err := service.UpdateProfile(ctx, account.ID, usecase.UpdateProfileInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "New Name", view.Name)
	assert.Equal(t, "old@example.com", view.Email)
}

func TestAccountService_UpdateProfile_NormalizesEmail(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount("old@example.com")

	accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Email == "new@example.com"
	})).Return(nil)

	email := " New@Example.COM "
	view, err := service.UpdateProfile(ctx, account.ID, usecase.UpdateProfileInput{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", view.Email)
}

func TestAccountService_UpdateProfile_EmailCollision(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()
	account := newTestAccount("old@example.com")

	accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrEmailTaken)

	email := "taken@example.com"
	_, err := service.UpdateProfile(ctx, account.ID, usecase.UpdateProfileInput{Email: &email})

	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
}

func TestAccountService_UpdateProfile_ValidationFailures(t *testing.T) {
	service, _ := createTestAccountService(t)
	ctx := context.Background()

	shortName := " x "
	_, err := service.UpdateProfile(ctx, uuid.New(), usecase.UpdateProfileInput{Name: &shortName})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Name must be at least 2 characters", appErr.Message())

	badEmail := "nope"
	_, err = service.UpdateProfile(ctx, uuid.New(), usecase.UpdateProfileInput{Email: &badEmail})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Please provide a valid email", appErr.Message())
}

func TestAccountService_List_DefaultsAndPages(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()

	accounts := []*entity.Account{
		newTestAccount("a@example.com"),
		newTestAccount("b@example.com"),
	}

	accountRepo.On("CountAll", ctx).Return(int64(25), nil)
	accountRepo.On("ListPage", ctx, 0, 10).Return(accounts, nil)

	output, err := service.List(ctx, usecase.ListAccountsInput{})

	require.NoError(t, err)
	assert.Len(t, output.Accounts, 2)
	assert.Equal(t, 1, output.Pagination.Page)
	assert.Equal(t, 10, output.Pagination.Limit)
	assert.Equal(t, int64(25), output.Pagination.Total)
	assert.Equal(t, int64(3), output.Pagination.Pages)
}

func TestAccountService_List_SecondPageOffset(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()

	accountRepo.On("CountAll", ctx).Return(int64(7), nil)
	accountRepo.On("ListPage", ctx, 5, 5).Return([]*entity.Account{}, nil)

	output, err := service.List(ctx, usecase.ListAccountsInput{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Pagination.Page)
	assert.Equal(t, int64(2), output.Pagination.Pages)
}

func TestAccountService_List_ClampsLimit(t *testing.T) {
	service, accountRepo := createTestAccountService(t)
	ctx := context.Background()

	accountRepo.On("CountAll", ctx).Return(int64(0), nil)
	accountRepo.On("ListPage", ctx, 0, 100).Return([]*entity.Account{}, nil)

	output, err := service.List(ctx, usecase.ListAccountsInput{Page: 1, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 100, output.Pagination.Limit)
	assert.Equal(t, int64(0), output.Pagination.Pages)
}
