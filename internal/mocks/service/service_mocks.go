// Package service provides test doubles for the domain service interfaces.
package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"passport/internal/domain/entity"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(identity entity.Identity) (string, error) {
	args := m.Called(identity)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (entity.Identity, error) {
	args := m.Called(token)

	return args.Get(0).(entity.Identity), args.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockEmailSender is a testify mock of service.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func NewMockEmailSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEmailSender {
	m := &MockEmailSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEmailSender) SendWelcome(ctx context.Context, to, name string) error {
	args := m.Called(ctx, to, name)

	return args.Error(0)
}
