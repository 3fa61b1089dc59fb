package repository

import (
	"context"

	"github.com/sel3a/sel3a/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Create
// persists the order and its lines atomically; List enriches each order
// with the customer display name. UpdateStatus writes the new status only
// when the stored status still equals from, so two racing transitions from
// the same observed state cannot both take effect.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (string, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus) error
	Delete(ctx context.Context, id string) error
}
