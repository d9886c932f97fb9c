package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/eaglebank/bank-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAccountRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	account := seedAccount(t, database, user.ID, "01000001", "0.00")

	assert.Equal(t, int64(0), account.Version, "new accounts start at version zero")

	found, err := repo.FindByNumber(ctx, "01000001")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "10-10-10", found.SortCode)
	assert.True(t, found.Balance.Equal(decimal.Zero))

	_, err = repo.FindByNumber(ctx, "01999999")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAccountRepository_FindAllByUserID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAccountRepository(database)
	ctx := context.Background()

	owner := seedUser(t, database)
	other := seedUser(t, database)
	seedAccount(t, database, owner.ID, "01000001", "0.00")
	seedAccount(t, database, owner.ID, "01000002", "0.00")
	seedAccount(t, database, other.ID, "01000003", "0.00")

	accounts, err := repo.FindAllByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "01000001", accounts[0].AccountNumber, "oldest first")

	accounts, err = repo.FindAllByUserID(ctx, "usr-nobody")
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountRepository_UpdateBalance(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAccountRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	seedAccount(t, database, user.ID, "01000001", "100.00")

	t.Run("matching version commits and bumps the version", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, "01000001", decimal.RequireFromString("150.00"), 0)
		require.NoError(t, err)

		found, err := repo.FindByNumber(ctx, "01000001")
		require.NoError(t, err)
		assert.True(t, found.Balance.Equal(decimal.RequireFromString("150.00")))
		assert.Equal(t, int64(1), found.Version)
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, "01000001", decimal.RequireFromString("999.00"), 0)
		assert.ErrorIs(t, err, models.ErrVersionConflict)

		found, err := repo.FindByNumber(ctx, "01000001")
		require.NoError(t, err)
		assert.True(t, found.Balance.Equal(decimal.RequireFromString("150.00")), "balance untouched")
	})

	t.Run("unknown account reads as a conflict", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, "01999999", decimal.RequireFromString("10.00"), 0)
		assert.ErrorIs(t, err, models.ErrVersionConflict)
	})
}

// Concurrent depositors must never lose an update: each writer re-reads and
// retries on conflict, and the final balance is the sum of all deposits.
func TestAccountRepository_ConcurrentDeposits(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAccountRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	seedAccount(t, database, user.ID, "01000001", "0.00")

	const writers = 8
	deposit := decimal.RequireFromString("10.00")

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				account, err := repo.FindByNumber(ctx, "01000001")
				if err != nil {
					errs <- err
					return
				}
				err = repo.UpdateBalance(ctx, "01000001", account.Balance.Add(deposit), account.Version)
				if err == nil {
					return
				}
				if !assert.ErrorIs(t, err, models.ErrVersionConflict) {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("writer failed: %v", err)
	}

	found, err := repo.FindByNumber(ctx, "01000001")
	require.NoError(t, err)
	assert.True(t, found.Balance.Equal(decimal.RequireFromString("80.00")),
		"got %s", found.Balance)
	assert.Equal(t, int64(writers), found.Version)
}

func TestAccountRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAccountRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	account := seedAccount(t, database, user.ID, "01000001", "50.00")

	account.Name = "Rainy day fund"
	account.AccountType = models.AccountTypeBusiness
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByNumber(ctx, "01000001")
	require.NoError(t, err)
	assert.Equal(t, "Rainy day fund", found.Name)
	assert.Equal(t, models.AccountTypeBusiness, found.AccountType)
	assert.True(t, found.Balance.Equal(decimal.RequireFromString("50.00")), "metadata update leaves balance alone")
	assert.Equal(t, int64(0), found.Version, "metadata update leaves version alone")
}

func TestAccountRepository_Delete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAccountRepository(database)
	ctx := context.Background()

	user := seedUser(t, database)
	seedAccount(t, database, user.ID, "01000001", "0.00")

	require.NoError(t, repo.Delete(ctx, "01000001"))

	_, err := repo.FindByNumber(ctx, "01000001")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "01000001"), models.ErrNotFound)
}
