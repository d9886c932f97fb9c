// Package mocks provides testify mocks for repository interfaces.
package mocks

import (
	"context"

	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Ensure mocks satisfy the repository interfaces
var (
	_ repository.UserRepository        = (*MockUserRepository)(nil)
	_ repository.AccountRepository     = (*MockAccountRepository)(nil)
	_ repository.TransactionRepository = (*MockTransactionRepository)(nil)
	_ repository.IdempotencyRepository = (*MockIdempotencyRepository)(nil)
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts expectations on cleanup
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) CountAccounts(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockAccountRepository is a mock implementation of repository.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock that asserts expectations on cleanup
func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	args := m.Called(ctx, accountNumber)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAllByUserID(ctx context.Context, userID string) ([]*models.Account, error) {
	args := m.Called(ctx, userID)
	accounts, _ := args.Get(0).([]*models.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, accountNumber string, newBalance decimal.Decimal, expectedVersion int64) error {
	return m.Called(ctx, accountNumber, newBalance, expectedVersion).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, accountNumber string) error {
	return m.Called(ctx, accountNumber).Error(0)
}

// MockTransactionRepository is a mock implementation of repository.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a mock that asserts expectations on cleanup
func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) FindByIDAndAccount(ctx context.Context, id, accountNumber string) (*models.Transaction, error) {
	args := m.Called(ctx, id, accountNumber)
	txn, _ := args.Get(0).(*models.Transaction)
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindAllByAccount(ctx context.Context, accountNumber string) ([]*models.Transaction, error) {
	args := m.Called(ctx, accountNumber)
	transactions, _ := args.Get(0).([]*models.Transaction)
	return transactions, args.Error(1)
}

// MockIdempotencyRepository is a mock implementation of repository.IdempotencyRepository
type MockIdempotencyRepository struct {
	mock.Mock
}

// NewMockIdempotencyRepository creates a mock that asserts expectations on cleanup
func NewMockIdempotencyRepository(t testingT) *MockIdempotencyRepository {
	m := &MockIdempotencyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdempotencyRepository) Get(ctx context.Context, key, requestPath, userID string) (*models.IdempotencyKey, error) {
	args := m.Called(ctx, key, requestPath, userID)
	idemKey, _ := args.Get(0).(*models.IdempotencyKey)
	return idemKey, args.Error(1)
}

func (m *MockIdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	return m.Called(ctx, idemKey).Error(0)
}
