package service

import (
	"context"
	"testing"

	"github.com/eaglebank/bank-api/internal/auth"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ownerCtx(userID string) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

func decimalEq(expected string) any {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(want)
	})
}

func testAccount(balance string) *models.Account {
	return &models.Account{
		AccountNumber: "01234567",
		UserID:        "usr-abc123",
		SortCode:      "10-10-10",
		Name:          "Main account",
		AccountType:   models.AccountTypePersonal,
		Balance:       decimal.RequireFromString(balance),
		Currency:      "GBP",
		Version:       3,
	}
}

func TestTransactionService_PerformCreate(t *testing.T) {
	svc := NewTransactionService(nil, "GBP")

	t.Run("successful deposit", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		txnRepo := mocks.NewMockTransactionRepository(t)
		ctx := ownerCtx("usr-abc123")

		accountRepo.On("FindByNumber", ctx, "01234567").Return(testAccount("100.00"), nil)
		accountRepo.On("UpdateBalance", ctx, "01234567", decimalEq("150.00"), int64(3)).Return(nil)
		txnRepo.On("Create", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)

		txn, err := svc.performCreate(ctx, accountRepo, txnRepo, "01234567", CreateTransactionRequest{
			Amount:    decimal.RequireFromString("50.00"),
			Currency:  "GBP",
			Type:      "deposit",
			Reference: "salary",
		})

		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.True(t, txn.Amount.Equal(decimal.RequireFromString("50.00")), "amount mismatch")
		assert.Equal(t, models.TransactionTypeDeposit, txn.Type)
		assert.Equal(t, "01234567", txn.AccountNumber)
		assert.Equal(t, "usr-abc123", txn.UserID, "owner should be denormalized onto the posting")
		assert.Equal(t, "salary", txn.Reference)
		assert.Contains(t, txn.ID, PrefixTransaction)
	})

	t.Run("successful withdrawal", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		txnRepo := mocks.NewMockTransactionRepository(t)
		ctx := ownerCtx("usr-abc123")

		accountRepo.On("FindByNumber", ctx, "01234567").Return(testAccount("100.00"), nil)
		accountRepo.On("UpdateBalance", ctx, "01234567", decimalEq("59.50"), int64(3)).Return(nil)
		txnRepo.On("Create", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)

		txn, err := svc.performCreate(ctx, accountRepo, txnRepo, "01234567", CreateTransactionRequest{
			Amount:   decimal.RequireFromString("40.50"),
			Currency: "GBP",
			Type:     "withdrawal",
		})

		require.NoError(t, err)
		assert.Equal(t, models.TransactionTypeWithdrawal, txn.Type)
	})

	t.Run("insufficient funds performs no writes", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		txnRepo := mocks.NewMockTransactionRepository(t)
		ctx := ownerCtx("usr-abc123")

		accountRepo.On("FindByNumber", ctx, "01234567").Return(testAccount("100.00"), nil)

		txn, err := svc.performCreate(ctx, accountRepo, txnRepo, "01234567", CreateTransactionRequest{
			Amount:   decimal.RequireFromString("150.00"),
			Currency: "GBP",
			Type:     "withdrawal",
		})

		assert.Nil(t, txn)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInsufficientFunds, svcErr.Code)
		accountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("withdrawal of exact balance is allowed", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		txnRepo := mocks.NewMockTransactionRepository(t)
		ctx := ownerCtx("usr-abc123")

		accountRepo.On("FindByNumber", ctx, "01234567").Return(testAccount("100.00"), nil)
		accountRepo.On("UpdateBalance", ctx, "01234567", decimalEq("0.00"), int64(3)).Return(nil)
		txnRepo.On("Create", ctx, mock.AnythingOfType("*models.Transaction")).Return(nil)

		_, err := svc.performCreate(ctx, accountRepo, txnRepo, "01234567", CreateTransactionRequest{
			Amount:   decimal.RequireFromString("100.00"),
			Currency: "GBP",
			Type:     "withdrawal",
		})

		require.NoError(t, err)
	})

	t.Run("account not found", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		txnRepo := mocks.NewMockTransactionRepository(t)
		ctx := ownerCtx("usr-abc123")

		accountRepo.On("FindByNumber", ctx, "01999999").Return(nil, models.ErrNotFound)

		_, err := svc.performCreate(ctx, accountRepo, txnRepo, "01999999", CreateTransactionRequest{
			Amount:   decimal.RequireFromString("10.00"),
			Currency: "GBP",
			Type:     "deposit",
		})

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
	})

	t.Run("non-owner is forbidden before any write", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		txnRepo := mocks.NewMockTransactionRepository(t)
		ctx := ownerCtx("usr-intruder")

		accountRepo.On("FindByNumber", ctx, "01234567").Return(testAccount("100.00"), nil)

		_, err := svc.performCreate(ctx, accountRepo, txnRepo, "01234567", CreateTransactionRequest{
			Amount:   decimal.RequireFromString("10.00"),
			Currency: "GBP",
			Type:     "deposit",
		})

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeForbidden, svcErr.Code)
		accountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("version conflict propagates for the retry wrapper", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository(t)
		txnRepo := mocks.NewMockTransactionRepository(t)
		ctx := ownerCtx("usr-abc123")

		accountRepo.On("FindByNumber", ctx, "01234567").Return(testAccount("100.00"), nil)
		accountRepo.On("UpdateBalance", ctx, "01234567", decimalEq("110.00"), int64(3)).
			Return(models.ErrVersionConflict)

		_, err := svc.performCreate(ctx, accountRepo, txnRepo, "01234567", CreateTransactionRequest{
			Amount:   decimal.RequireFromString("10.00"),
			Currency: "GBP",
			Type:     "deposit",
		})

		assert.ErrorIs(t, err, models.ErrVersionConflict)
		txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTransactionService_Create_Validation(t *testing.T) {
	svc := NewTransactionService(nil, "GBP")
	ctx := ownerCtx("usr-abc123")

	tests := []struct {
		name string
		req  CreateTransactionRequest
	}{
		{
			name: "unknown type",
			req: CreateTransactionRequest{
				Amount:   decimal.RequireFromString("10.00"),
				Currency: "GBP",
				Type:     "transfer",
			},
		},
		{
			name: "zero amount",
			req: CreateTransactionRequest{
				Amount:   decimal.Zero,
				Currency: "GBP",
				Type:     "deposit",
			},
		},
		{
			name: "negative amount",
			req: CreateTransactionRequest{
				Amount:   decimal.RequireFromString("-5.00"),
				Currency: "GBP",
				Type:     "deposit",
			},
		},
		{
			name: "amount above limit",
			req: CreateTransactionRequest{
				Amount:   decimal.RequireFromString("10000.01"),
				Currency: "GBP",
				Type:     "deposit",
			},
		},
		{
			name: "too many decimal places",
			req: CreateTransactionRequest{
				Amount:   decimal.RequireFromString("10.001"),
				Currency: "GBP",
				Type:     "deposit",
			},
		},
		{
			name: "wrong currency",
			req: CreateTransactionRequest{
				Amount:   decimal.RequireFromString("10.00"),
				Currency: "USD",
				Type:     "deposit",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := svc.Create(ctx, "01234567", tt.req)

			assert.Nil(t, txn)
			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, ErrCodeValidation, svcErr.Code)
			assert.NotEmpty(t, svcErr.Details)
		})
	}
}
