package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/auth"
	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/repository"
)

// UserService handles user registration, profile and deletion operations
type UserService struct {
	db              *db.DB
	defaultPassword string
}

// NewUserService creates a new UserService. New users are created with the
// operator-configured default password rather than a user-supplied one.
func NewUserService(database *db.DB, defaultPassword string) *UserService {
	return &UserService{
		db:              database,
		defaultPassword: defaultPassword,
	}
}

// Create registers a new user. Registration is unauthenticated.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := validateCreateUser(req); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(s.defaultPassword)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to hash credential",
			Err:     err,
		}
	}

	user := &models.User{
		ID:   generateUserID(),
		Name: req.Name,
		Address: models.Address{
			Line1:    req.Address.Line1,
			Line2:    req.Address.Line2,
			Line3:    req.Address.Line3,
			Town:     req.Address.Town,
			County:   req.Address.County,
			Postcode: req.Address.Postcode,
		},
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	repo := repository.NewUserRepository(s.db)
	if err := repo.Create(ctx, user); err != nil {
		return nil, mapUserRepoError(err)
	}

	return user, nil
}

// FetchByID returns a user's profile. Only the owning identity may read it.
func (s *UserService) FetchByID(ctx context.Context, userID string) (*models.User, error) {
	if err := authorizeOwner(ctx, userID, "The user is not allowed to access the user details"); err != nil {
		return nil, err
	}

	repo := repository.NewUserRepository(s.db)
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserRepoError(err)
	}

	return user, nil
}

// UpdateByID applies a partial profile update; unset fields keep their
// existing values.
func (s *UserService) UpdateByID(ctx context.Context, userID string, req UpdateUserRequest) (*models.User, error) {
	if err := authorizeOwner(ctx, userID, "The user is not allowed to update the user details"); err != nil {
		return nil, err
	}
	if err := validateUpdateUser(req); err != nil {
		return nil, err
	}

	repo := repository.NewUserRepository(s.db)
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserRepoError(err)
	}

	mergeUserUpdate(user, req)

	if err := repo.Update(ctx, user); err != nil {
		return nil, mapUserRepoError(err)
	}

	return user, nil
}

// DeleteByID removes a user. Deletion is blocked while the user still owns
// any account.
func (s *UserService) DeleteByID(ctx context.Context, userID string) error {
	if err := authorizeOwner(ctx, userID, "The user is not allowed to delete the user"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := s.performDelete(ctx, repository.NewUserRepository(tx), userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return nil
}

// performDelete contains the referential-guard and delete logic
func (s *UserService) performDelete(ctx context.Context, repo repository.UserRepository, userID string) error {
	if _, err := repo.FindByID(ctx, userID); err != nil {
		return mapUserRepoError(err)
	}

	count, err := repo.CountAccounts(ctx, userID)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to check user accounts",
			Err:     err,
		}
	}
	if count > 0 {
		return &ServiceError{
			Code:    ErrCodeUserHasAccounts,
			Message: "A user cannot be deleted when they are associated with a bank account",
		}
	}

	if err := repo.Delete(ctx, userID); err != nil {
		return mapUserRepoError(err)
	}

	return nil
}

func mergeUserUpdate(user *models.User, req UpdateUserRequest) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Address != nil {
		mergeAddressUpdate(&user.Address, req.Address)
	}
}

func mergeAddressUpdate(addr *models.Address, req *UpdateAddressRequest) {
	if req.Line1 != nil {
		addr.Line1 = *req.Line1
	}
	if req.Line2 != nil {
		addr.Line2 = *req.Line2
	}
	if req.Line3 != nil {
		addr.Line3 = *req.Line3
	}
	if req.Town != nil {
		addr.Town = *req.Town
	}
	if req.County != nil {
		addr.County = *req.County
	}
	if req.Postcode != nil {
		addr.Postcode = *req.Postcode
	}
}

func mapUserRepoError(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		return &ServiceError{
			Code:    ErrCodeEmailTaken,
			Message: "A user with this email address already exists",
		}
	case errors.Is(err, models.ErrNotFound):
		return &ServiceError{
			Code:    ErrCodeUserNotFound,
			Message: "User was not found",
		}
	default:
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "unexpected storage failure",
			Err:     err,
		}
	}
}
