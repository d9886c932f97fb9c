// Package mocks provides testify mocks for service interfaces.
package mocks

import (
	"context"

	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// Ensure mocks satisfy the service interfaces
var (
	_ service.Authenticator      = (*MockAuthenticator)(nil)
	_ service.UserManager        = (*MockUserManager)(nil)
	_ service.AccountManager     = (*MockAccountManager)(nil)
	_ service.TransactionManager = (*MockTransactionManager)(nil)
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthenticator is a mock implementation of service.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

// NewMockAuthenticator creates a mock that asserts expectations on cleanup
func NewMockAuthenticator(t testingT) *MockAuthenticator {
	m := &MockAuthenticator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthenticator) Login(ctx context.Context, req service.LoginRequest) (*service.TokenGrant, error) {
	args := m.Called(ctx, req)
	grant, _ := args.Get(0).(*service.TokenGrant)
	return grant, args.Error(1)
}

// MockUserManager is a mock implementation of service.UserManager
type MockUserManager struct {
	mock.Mock
}

// NewMockUserManager creates a mock that asserts expectations on cleanup
func NewMockUserManager(t testingT) *MockUserManager {
	m := &MockUserManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserManager) Create(ctx context.Context, req service.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserManager) FetchByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserManager) UpdateByID(ctx context.Context, userID string, req service.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, userID, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserManager) DeleteByID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// MockAccountManager is a mock implementation of service.AccountManager
type MockAccountManager struct {
	mock.Mock
}

// NewMockAccountManager creates a mock that asserts expectations on cleanup
func NewMockAccountManager(t testingT) *MockAccountManager {
	m := &MockAccountManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountManager) Create(ctx context.Context, req service.CreateAccountRequest) (*models.Account, error) {
	args := m.Called(ctx, req)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountManager) List(ctx context.Context) ([]*models.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*models.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountManager) FetchByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	args := m.Called(ctx, accountNumber)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountManager) UpdateByNumber(ctx context.Context, accountNumber string, req service.UpdateAccountRequest) (*models.Account, error) {
	args := m.Called(ctx, accountNumber, req)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountManager) DeleteByNumber(ctx context.Context, accountNumber string) error {
	return m.Called(ctx, accountNumber).Error(0)
}

// MockTransactionManager is a mock implementation of service.TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts expectations on cleanup
func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionManager) Create(ctx context.Context, accountNumber string, req service.CreateTransactionRequest) (*models.Transaction, error) {
	args := m.Called(ctx, accountNumber, req)
	txn, _ := args.Get(0).(*models.Transaction)
	return txn, args.Error(1)
}

func (m *MockTransactionManager) List(ctx context.Context, accountNumber string) ([]*models.Transaction, error) {
	args := m.Called(ctx, accountNumber)
	transactions, _ := args.Get(0).([]*models.Transaction)
	return transactions, args.Error(1)
}

func (m *MockTransactionManager) FetchByID(ctx context.Context, accountNumber, transactionID string) (*models.Transaction, error) {
	args := m.Called(ctx, accountNumber, transactionID)
	txn, _ := args.Get(0).(*models.Transaction)
	return txn, args.Error(1)
}
