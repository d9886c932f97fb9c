package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/eaglebank/bank-api/internal/config"
	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// setupTestDB connects to the local test database, applying the schema on
// first use. Tests are skipped when no database is reachable so the rest of
// the suite stays runnable anywhere.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Host:     testEnv("DB_HOST", "localhost"),
		Port:     testEnv("DB_PORT", "5432"),
		User:     testEnv("DB_USER", "postgres"),
		Password: testEnv("DB_PASSWORD", "postgres"),
		DBName:   testEnv("DB_NAME", "eaglebank_test"),
		SSLMode:  testEnv("DB_SSLMODE", "disable"),
	}

	logger := (&config.LoggerConfig{Level: "error"}).NewLogger()

	database, err := db.Connect(context.Background(), cfg, logger)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close() //nolint:errcheck
	})

	runMigrations(t, database)
	truncateTables(t, database)

	return database
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	if _, err := database.ExecContext(context.Background(), string(sqlBytes)); err != nil {
		// Tables usually exist from a previous run
		t.Logf("migration execution completed (tables may already exist)")
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(),
		`TRUNCATE TABLE transactions, idempotency_keys, accounts, users CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

func seedUser(t *testing.T, database *db.DB) *models.User {
	t.Helper()

	user := &models.User{
		ID:   "usr-" + uuid.NewString(),
		Name: "Jane Doe",
		Address: models.Address{
			Line1:    "1 High Street",
			Town:     "London",
			County:   "Greater London",
			Postcode: "E1 6AN",
		},
		PhoneNumber:  "+44 1234 567890",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
	}

	if err := NewUserRepository(database).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedAccount(t *testing.T, database *db.DB, userID, accountNumber, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountNumber: accountNumber,
		UserID:        userID,
		SortCode:      "10-10-10",
		Name:          "Main account",
		AccountType:   models.AccountTypePersonal,
		Balance:       decimal.RequireFromString(balance),
		Currency:      "GBP",
	}

	if err := NewAccountRepository(database).Create(context.Background(), account); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return account
}
