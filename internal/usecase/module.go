package usecase

import (
	"go.uber.org/fx"

	"github.com/sel3a/sel3a/internal/config"
	pkgAuth "github.com/sel3a/sel3a/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewInventoryUseCase,
	NewOrderUseCase,
	NewCatalogUseCase,
	NewCustomerUseCase,
)

func newAuthUseCase(cfg *config.Config, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return NewAuthUseCase(cfg.OperatorPasswordHash, hasher, strategy)
}
