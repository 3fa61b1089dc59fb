package usecase

import (
	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	pkgAuth "github.com/sel3a/sel3a/internal/pkg/auth"
)

// operatorID is the single principal of this system; the application is
// operated by one shop account.
const operatorID int64 = 1

// AuthUseCase authenticates the shop operator and manages tokens.
type AuthUseCase struct {
	passwordHash string
	hasher       pkgAuth.PasswordHasher
	tokens       pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase around the configured operator
// password hash.
func NewAuthUseCase(passwordHash string, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{passwordHash: passwordHash, hasher: hasher, tokens: strategy}
}

// Authenticate validates the operator password and returns an auth token.
func (u *AuthUseCase) Authenticate(password string) (string, error) {
	if password == "" || u.passwordHash == "" {
		return "", domainErrors.ErrInvalidCredentials
	}

	if err := u.hasher.Compare(u.passwordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssueToken(operatorID)
}

// ParseToken validates the token signature and expiry.
func (u *AuthUseCase) ParseToken(token string) error {
	if token == "" {
		return pkgAuth.ErrInvalidToken
	}
	if _, err := u.tokens.ParseToken(token); err != nil {
		return err
	}
	return nil
}
