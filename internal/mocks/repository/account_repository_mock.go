// Package repository provides test doubles for the persistence interfaces.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"passport/internal/domain/entity"
)

// MockAccountRepository is a testify mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) ListPage(ctx context.Context, offset, limit int) ([]*entity.Account, error) {
	args := m.Called(ctx, offset, limit)
	if accounts, ok := args.Get(0).([]*entity.Account); ok {
		return accounts, args.Error(1)
	}

	return nil, args.Error(1)
}
