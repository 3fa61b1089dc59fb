package repository

import (
	"context"

	"github.com/sel3a/sel3a/internal/domain/model"
)

// ProductUpdate lists catalog fields that may change after creation. Nil
// fields are left untouched. Stock is deliberately absent: quantity moves
// only through ReserveStock/RestockStock.
type ProductUpdate struct {
	Name        *string
	Ref         *string
	Description *string
	Price       *string
	Category    *string
	Supplier    *string
}

// ProductRepository describes persistence operations with products and the
// atomic stock primitives backing the inventory ledger.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (string, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, onlyActive bool) ([]model.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) error
	SetActive(ctx context.Context, id string, active bool) error

	// ReserveStock decrements quantity only if at least qty units remain.
	// The check and the decrement are a single storage-level operation.
	ReserveStock(ctx context.Context, id string, qty int) error
	// RestockStock returns qty units to available stock.
	RestockStock(ctx context.Context, id string, qty int) error
	// Stock reports the current quantity.
	Stock(ctx context.Context, id string) (int, error)
	// ListLowStock returns active products at or below threshold.
	ListLowStock(ctx context.Context, threshold int) ([]model.Product, error)
}
