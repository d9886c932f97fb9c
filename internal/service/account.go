package service

import (
	"context"
	"errors"

	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/repository"
	"github.com/shopspring/decimal"
)

// AccountService handles account lifecycle operations. Balance changes are
// out of its reach entirely; those belong to TransactionService.
type AccountService struct {
	db       *db.DB
	sortCode string
	currency string
}

// NewAccountService creates a new AccountService with the bank's fixed
// sort code and currency applied to every new account.
func NewAccountService(database *db.DB, sortCode, currency string) *AccountService {
	return &AccountService{
		db:       database,
		sortCode: sortCode,
		currency: currency,
	}
}

// Create opens a new account for the authenticated user with balance zero
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*models.Account, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCreateAccount(req); err != nil {
		return nil, err
	}

	// Defensive check: a valid token whose user has since been deleted
	// must not be able to open accounts.
	userRepo := repository.NewUserRepository(s.db)
	if _, err := userRepo.FindByID(ctx, userID); err != nil {
		return nil, mapUserRepoError(err)
	}

	account := &models.Account{
		AccountNumber: generateAccountNumber(),
		UserID:        userID,
		SortCode:      s.sortCode,
		Name:          req.Name,
		AccountType:   models.AccountType(req.AccountType),
		Balance:       decimal.Zero,
		Currency:      s.currency,
	}

	repo := repository.NewAccountRepository(s.db)
	if err := repo.Create(ctx, account); err != nil {
		return nil, mapAccountRepoError(err)
	}

	return account, nil
}

// List returns every account owned by the authenticated user
func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	repo := repository.NewAccountRepository(s.db)
	accounts, err := repo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, mapAccountRepoError(err)
	}

	return accounts, nil
}

// FetchByNumber returns an account by its account number, owner-guarded
func (s *AccountService) FetchByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	repo := repository.NewAccountRepository(s.db)
	account, err := repo.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, mapAccountRepoError(err)
	}
	if err := authorizeOwner(ctx, account.UserID, "The user is not allowed to access the bank account details"); err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateByNumber applies a partial update over the mutable fields only
// (name, type); balance, currency, sort code and owner never change here.
func (s *AccountService) UpdateByNumber(ctx context.Context, accountNumber string, req UpdateAccountRequest) (*models.Account, error) {
	if err := validateUpdateAccount(req); err != nil {
		return nil, err
	}

	repo := repository.NewAccountRepository(s.db)
	account, err := repo.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, mapAccountRepoError(err)
	}
	if err := authorizeOwner(ctx, account.UserID, "The user is not allowed to update the bank account details"); err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = models.AccountType(*req.AccountType)
	}

	if err := repo.Update(ctx, account); err != nil {
		return nil, mapAccountRepoError(err)
	}

	return account, nil
}

// DeleteByNumber removes an account and, through the schema cascade, its
// transactions. Only the owner may delete.
func (s *AccountService) DeleteByNumber(ctx context.Context, accountNumber string) error {
	repo := repository.NewAccountRepository(s.db)
	account, err := repo.FindByNumber(ctx, accountNumber)
	if err != nil {
		return mapAccountRepoError(err)
	}
	if err := authorizeOwner(ctx, account.UserID, "The user is not allowed to delete the bank account details"); err != nil {
		return err
	}

	if err := repo.Delete(ctx, accountNumber); err != nil {
		return mapAccountRepoError(err)
	}

	return nil
}

func mapAccountRepoError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "Bank account was not found",
		}
	}
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: "unexpected storage failure",
		Err:     err,
	}
}
