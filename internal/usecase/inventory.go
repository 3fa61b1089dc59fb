package usecase

import (
	"context"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/repository"
)

// InventoryUseCase is the single entry point for stock movements. The
// check-and-decrement of Reserve is atomic at the storage layer, so two
// concurrent reservations can never jointly overdraw a product.
type InventoryUseCase struct {
	products repository.ProductRepository
}

// NewInventoryUseCase constructs InventoryUseCase.
func NewInventoryUseCase(products repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{products: products}
}

// Reserve takes qty units off available stock, failing with
// InsufficientStockError when fewer units remain.
func (u *InventoryUseCase) Reserve(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.products.ReserveStock(ctx, productID, qty)
}

// Restock returns qty units to available stock.
func (u *InventoryUseCase) Restock(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.products.RestockStock(ctx, productID, qty)
}

// Stock reports the current quantity of a product.
func (u *InventoryUseCase) Stock(ctx context.Context, productID string) (int, error) {
	return u.products.Stock(ctx, productID)
}

// LowStock returns active products at or below threshold.
func (u *InventoryUseCase) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	return u.products.ListLowStock(ctx, threshold)
}
