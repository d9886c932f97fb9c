package service

import (
	"context"

	"github.com/eaglebank/bank-api/internal/auth"
)

// currentUserID extracts the authenticated user id from the request context.
// Routes behind the auth middleware always carry one; its absence means the
// request never passed authentication.
func currentUserID(ctx context.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", &ServiceError{
			Code:    ErrCodeUnauthenticated,
			Message: "Access token is missing or invalid",
		}
	}
	return userID, nil
}

// authorizeOwner denies access when the authenticated user does not own the
// target resource. Every fetch/update/delete/list-scoped operation on users,
// accounts and transactions goes through this single guard.
func authorizeOwner(ctx context.Context, ownerID, message string) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	if userID != ownerID {
		return &ServiceError{
			Code:    ErrCodeForbidden,
			Message: message,
		}
	}
	return nil
}
