// Package usecase provides test doubles for the application usecase interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"passport/internal/usecase"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, accountID uuid.UUID, input usecase.ChangePasswordInput) error {
	args := m.Called(ctx, accountID, input)

	return args.Error(0)
}

// MockAccountUsecase is a testify mock of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) GetProfile(ctx context.Context, accountID uuid.UUID) (*usecase.AccountView, error) {
	args := m.Called(ctx, accountID)
	if view, ok := args.Get(0).(*usecase.AccountView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdateProfileInput) (*usecase.AccountView, error) {
	args := m.Called(ctx, accountID, input)
	if view, ok := args.Get(0).(*usecase.AccountView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) List(ctx context.Context, input usecase.ListAccountsInput) (*usecase.ListAccountsOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ListAccountsOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}
