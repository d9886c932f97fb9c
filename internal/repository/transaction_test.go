package repository

import (
	"context"
	"testing"

	"github.com/eaglebank/bank-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postTransaction(t *testing.T, repo TransactionRepository, id, accountNumber, userID, amount, reference string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		ID:            id,
		AccountNumber: accountNumber,
		UserID:        userID,
		Amount:        decimal.RequireFromString(amount),
		Currency:      "GBP",
		Type:          models.TransactionTypeDeposit,
		Reference:     reference,
	}
	require.NoError(t, repo.Create(context.Background(), txn))
	return txn
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTransactionRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	seedAccount(t, database, user.ID, "01000001", "0.00")
	seedAccount(t, database, user.ID, "01000002", "0.00")

	txn := postTransaction(t, repo, "tan-aaa111", "01000001", user.ID, "50.00", "salary")
	assert.False(t, txn.CreatedAt.IsZero(), "create should populate the timestamp")

	t.Run("find scoped to its account", func(t *testing.T) {
		found, err := repo.FindByIDAndAccount(ctx, "tan-aaa111", "01000001")
		require.NoError(t, err)
		assert.True(t, found.Amount.Equal(decimal.RequireFromString("50.00")))
		assert.Equal(t, "salary", found.Reference)
		assert.Equal(t, user.ID, found.UserID)
	})

	t.Run("same id under another account is not found", func(t *testing.T) {
		_, err := repo.FindByIDAndAccount(ctx, "tan-aaa111", "01000002")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByIDAndAccount(ctx, "tan-missing", "01000001")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestTransactionRepository_FindAllByAccount(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTransactionRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	seedAccount(t, database, user.ID, "01000001", "0.00")
	seedAccount(t, database, user.ID, "01000002", "0.00")

	postTransaction(t, repo, "tan-aaa111", "01000001", user.ID, "50.00", "")
	postTransaction(t, repo, "tan-bbb222", "01000001", user.ID, "25.00", "")
	postTransaction(t, repo, "tan-ccc333", "01000002", user.ID, "99.00", "")

	transactions, err := repo.FindAllByAccount(ctx, "01000001")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "tan-aaa111", transactions[0].ID, "oldest first")
	assert.Empty(t, transactions[0].Reference, "missing reference comes back empty")

	transactions, err = repo.FindAllByAccount(ctx, "01999999")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransactionRepository_CascadeOnAccountDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTransactionRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	seedAccount(t, database, user.ID, "01000001", "0.00")
	postTransaction(t, repo, "tan-aaa111", "01000001", user.ID, "50.00", "")

	require.NoError(t, NewAccountRepository(database).Delete(ctx, "01000001"))

	_, err := repo.FindByIDAndAccount(ctx, "tan-aaa111", "01000001")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIdempotencyRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewIdempotencyRepository(database)
	ctx := context.Background()

	const path = "/v1/accounts/01000001/transactions"

	t.Run("absent key returns nil", func(t *testing.T) {
		cached, err := repo.Get(ctx, "key-1", path, "usr-owner")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("store and read back", func(t *testing.T) {
		require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
			Key:            "key-1",
			RequestPath:    path,
			UserID:         "usr-owner",
			ResponseStatus: 201,
			ResponseBody:   `{"id":"tan-aaa111"}`,
		}))

		cached, err := repo.Get(ctx, "key-1", path, "usr-owner")
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, 201, cached.ResponseStatus)
		assert.Equal(t, `{"id":"tan-aaa111"}`, cached.ResponseBody)
		assert.Equal(t, "usr-owner", cached.UserID)
	})

	t.Run("first committed response wins", func(t *testing.T) {
		require.NoError(t, repo.Store(ctx, &models.IdempotencyKey{
			Key:            "key-1",
			RequestPath:    path,
			UserID:         "usr-owner",
			ResponseStatus: 201,
			ResponseBody:   `{"id":"tan-bbb222"}`,
		}))

		cached, err := repo.Get(ctx, "key-1", path, "usr-owner")
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, `{"id":"tan-aaa111"}`, cached.ResponseBody)
	})

	t.Run("same key on another path is distinct", func(t *testing.T) {
		cached, err := repo.Get(ctx, "key-1", "/v1/accounts/01000002/transactions", "usr-owner")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("same key for another user is distinct", func(t *testing.T) {
		cached, err := repo.Get(ctx, "key-1", path, "usr-intruder")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})
}
