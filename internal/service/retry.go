package service

import (
	"context"
	"errors"
	"time"

	"github.com/eaglebank/bank-api/internal/models"
)

// Optimistic-lock retry policy for the balance-mutation protocol.
const (
	maxBalanceAttempts   = 3
	balanceRetryInterval = 50 * time.Millisecond
)

// retryOnVersionConflict runs fn up to attempts times, retrying only when it
// fails with models.ErrVersionConflict. Each retry re-executes the whole
// unit of work, so the caller re-reads state it lost the race on. Any other
// error propagates on first occurrence.
func retryOnVersionConflict(ctx context.Context, attempts int, interval time.Duration, fn func() error) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, models.ErrVersionConflict) {
			return err
		}
		if attempt == attempts {
			break
		}
		select {
		case <-time.After(interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return &ServiceError{
		Code:    ErrCodeRetryExhausted,
		Message: "transaction could not be committed after repeated conflicts",
		Err:     err,
	}
}
