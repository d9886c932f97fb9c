package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
)

// IdempotencyRepository stores replayed responses keyed by client idempotency
// key, request path and authenticated user
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath, userID string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

// idempotencyRepository implements IdempotencyRepository
type idempotencyRepository struct {
	db db.Querier
}

// NewIdempotencyRepository creates a new IdempotencyRepository bound to the given querier.
func NewIdempotencyRepository(q db.Querier) IdempotencyRepository {
	return &idempotencyRepository{db: q}
}

// Get returns the cached response for a key/path/user triple, or nil when
// absent. The user scoping is what keeps one principal from replaying a
// response that belongs to another.
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath, userID string) (*models.IdempotencyKey, error) {
	query := `
		SELECT key, request_path, user_id, response_status, response_body, created_at
		FROM idempotency_keys
		WHERE key = $1 AND request_path = $2 AND user_id = $3
	`

	var idemKey models.IdempotencyKey
	err := r.db.QueryRowContext(ctx, query, key, requestPath, userID).Scan(
		&idemKey.Key,
		&idemKey.RequestPath,
		&idemKey.UserID,
		&idemKey.ResponseStatus,
		&idemKey.ResponseBody,
		&idemKey.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Store caches a response; concurrent duplicate inserts are ignored so the
// first committed response wins.
func (r *idempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	query := `
		INSERT INTO idempotency_keys (key, request_path, user_id, response_status, response_body, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (key, request_path, user_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.UserID,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}

	return nil
}
