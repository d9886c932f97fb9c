// Package repository provides data access layer implementations for the bank API.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	CountAccounts(ctx context.Context, userID string) (int, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db db.Querier
}

// NewUserRepository creates a new UserRepository bound to the given querier.
func NewUserRepository(q db.Querier) UserRepository {
	return &userRepository{db: q}
}

const userColumns = `id, name, address_line1, address_line2, address_line3,
	       address_town, address_county, address_postcode, phone_number,
	       email, password_hash, created_timestamp, updated_timestamp`

// Create inserts a new user row
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, address_line1, address_line2, address_line3,
		                   address_town, address_county, address_postcode,
		                   phone_number, email, password_hash,
		                   created_timestamp, updated_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_timestamp, updated_timestamp
	`

	err := r.db.QueryRowContext(ctx, query,
		user.ID,
		user.Name,
		user.Address.Line1,
		nullable(user.Address.Line2),
		nullable(user.Address.Line3),
		user.Address.Town,
		user.Address.County,
		user.Address.Postcode,
		user.PhoneNumber,
		user.Email,
		user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return models.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by its id
func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// FindByEmail retrieves a user by its login email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// Update persists the mutable profile fields of an existing user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $2,
		    address_line1 = $3,
		    address_line2 = $4,
		    address_line3 = $5,
		    address_town = $6,
		    address_county = $7,
		    address_postcode = $8,
		    phone_number = $9,
		    email = $10,
		    updated_timestamp = NOW()
		WHERE id = $1
		RETURNING updated_timestamp
	`

	err := r.db.QueryRowContext(ctx, query,
		user.ID,
		user.Name,
		user.Address.Line1,
		nullable(user.Address.Line2),
		nullable(user.Address.Line3),
		user.Address.Town,
		user.Address.County,
		user.Address.Postcode,
		user.PhoneNumber,
		user.Email,
	).Scan(&user.UpdatedAt)

	if isUniqueViolation(err) {
		return models.ErrDuplicateEmail
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("user %s: %w", user.ID, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// Delete removes a user row
func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}

	return nil
}

// CountAccounts returns the number of accounts owned by the given user
func (r *userRepository) CountAccounts(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var line2, line3 sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Address.Line1,
		&line2,
		&line3,
		&user.Address.Town,
		&user.Address.County,
		&user.Address.Postcode,
		&user.PhoneNumber,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.Address.Line2 = line2.String
	user.Address.Line3 = line3.String
	return &user, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
