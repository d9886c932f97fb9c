package service

import (
	"context"

	"github.com/eaglebank/bank-api/internal/auth"
	"github.com/eaglebank/bank-api/internal/db"
	"github.com/eaglebank/bank-api/internal/repository"
)

// TokenGrant is the result of a successful credential exchange
type TokenGrant struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// AuthService exchanges credentials for signed access tokens
type AuthService struct {
	db     *db.DB
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(database *db.DB, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		db:     database,
		tokens: tokens,
	}
}

// Login verifies the credentials and issues a token. Every failure mode
// (unknown email, wrong password, blank fields) returns the same
// unauthenticated error so callers cannot probe which part was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenGrant, error) {
	if req.Email == "" || req.Password == "" {
		return nil, invalidCredentials()
	}

	repo := repository.NewUserRepository(s.db)
	user, err := repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, invalidCredentials()
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, invalidCredentials()
	}

	token, err := s.tokens.Generate(user.Email, user.ID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to issue token",
			Err:     err,
		}
	}

	return &TokenGrant{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.Expiry().Seconds()),
	}, nil
}

func invalidCredentials() error {
	return &ServiceError{
		Code:    ErrCodeUnauthenticated,
		Message: "Invalid email or password",
	}
}
