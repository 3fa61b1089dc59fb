package usecase_test

import (
	. "github.com/sel3a/sel3a/internal/usecase"

	"fmt"
	"testing"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	pkgAuth "github.com/sel3a/sel3a/internal/pkg/auth"
	testhelpers "github.com/sel3a/sel3a/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(operatorID int64) (string, error) {
			return fmt.Sprintf("token-%d", operatorID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseAuthenticateSuccess(t *testing.T) {
	uc := NewAuthUseCase("hash:secret", testhelpers.HasherStub{}, newStrategyStub())

	token, err := uc.Authenticate("secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateWrongPassword(t *testing.T) {
	uc := NewAuthUseCase("hash:secret", testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Authenticate("bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateValidation(t *testing.T) {
	uc := NewAuthUseCase("hash:secret", testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Authenticate(""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}

	// No configured hash means nobody can log in.
	unconfigured := NewAuthUseCase("", testhelpers.HasherStub{}, newStrategyStub())
	if _, err := unconfigured.Authenticate("secret"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials without configured hash, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateIssueTokenError(t *testing.T) {
	strategy := testhelpers.StrategyStub{IssueFn: func(int64) (string, error) {
		return "", fmt.Errorf("cannot issue token")
	}}
	uc := NewAuthUseCase("hash:secret", testhelpers.HasherStub{}, strategy)
	if _, err := uc.Authenticate("secret"); err == nil {
		t.Fatal("expected token issuing error")
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase("hash:secret", testhelpers.HasherStub{}, newStrategyStub())

	if err := uc.ParseToken("token-1"); err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
