package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/money"
	"github.com/sel3a/sel3a/internal/domain/repository"
)

// OrderLineRequest is a requested product/quantity pair.
type OrderLineRequest struct {
	ProductID string
	Quantity  int
}

// CreateOrderRequest is the typed input for order creation. A zero
// OrderDate defaults to the current time.
type CreateOrderRequest struct {
	CustomerID string
	Lines      []OrderLineRequest
	OrderDate  time.Time
}

// OrderUseCase turns order requests into persisted orders with correct
// inventory effects and drives the status lifecycle.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	ledger    *InventoryUseCase
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	ledger *InventoryUseCase,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, customers: customers, ledger: ledger, logger: logger}
}

// Create validates the request against current stock, computes the total,
// persists the order with status pending and then applies the per-line
// reservations. Validation failures abort before anything is written.
//
// Reservation failures after the order row exists (a race with a concurrent
// order) are logged per line and the remaining lines are still applied; the
// persisted order is not rolled back.
func (u *OrderUseCase) Create(ctx context.Context, req CreateOrderRequest) (string, error) {
	if len(req.Lines) == 0 {
		return "", domainErrors.ErrEmptyOrder
	}

	if _, err := u.customers.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", domainErrors.ErrCustomerNotFound
		}
		return "", err
	}

	lines := make([]model.OrderLine, 0, len(req.Lines))
	total := money.Zero()
	for _, reqLine := range req.Lines {
		if reqLine.Quantity <= 0 {
			return "", domainErrors.ErrInvalidQuantity
		}

		product, err := u.products.GetByID(ctx, reqLine.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return "", domainErrors.ErrProductNotFound
			}
			return "", err
		}

		// Advisory availability check before anything is committed; the
		// authoritative check happens inside the atomic reservation below.
		if product.Quantity < reqLine.Quantity {
			return "", &domainErrors.InsufficientStockError{
				ProductID: product.ID,
				Available: product.Quantity,
				Requested: reqLine.Quantity,
			}
		}

		line := model.OrderLine{
			ProductID: product.ID,
			Quantity:  reqLine.Quantity,
			UnitPrice: product.Price,
		}
		lines = append(lines, line)
		total = total.Add(line.Total())
	}

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &model.Order{
		CustomerID: req.CustomerID,
		Lines:      lines,
		Status:     model.OrderStatusPending,
		TotalPrice: total,
		OrderDate:  orderDate,
	}

	id, err := u.orders.Create(ctx, order)
	if err != nil {
		return "", &domainErrors.PersistenceError{Op: "insert order", Err: err}
	}

	for _, line := range lines {
		if err := u.ledger.Reserve(ctx, line.ProductID, line.Quantity); err != nil {
			u.logger.Error("stock reservation failed after order persisted",
				slog.String("order", id),
				slog.String("product", line.ProductID),
				slog.Int("quantity", line.Quantity),
				slog.String("error", err.Error()),
			)
		}
	}

	return id, nil
}

// GetByID fetches a single order.
func (u *OrderUseCase) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders enriched with customer names. An empty filter matches
// all orders.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error) {
	return u.orders.List(ctx, filter, sort)
}

// UpdateStatus validates the transition against the lifecycle machine,
// persists the new status and applies the cancellation restock when the
// plan requires it. The repository write asserts the observed prior status,
// so two racing cancellations of the same order cannot both pass: the loser
// fails before any restock and line items are never returned twice.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}

	plan, err := model.PlanTransition(order.Status, status)
	if err != nil {
		return err
	}

	if err := u.orders.UpdateStatus(ctx, id, plan.From, plan.To); err != nil {
		if domainErrors.IsInvalidTransition(err) || errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		return &domainErrors.PersistenceError{Op: "update order status", Err: err}
	}

	if plan.Restock {
		for _, line := range order.Lines {
			if err := u.ledger.Restock(ctx, line.ProductID, line.Quantity); err != nil {
				u.logger.Error("restock failed during order cancellation",
					slog.String("order", id),
					slog.String("product", line.ProductID),
					slog.Int("quantity", line.Quantity),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	return nil
}

// Delete removes an order permanently. Deletion is an administrative
// correction and does not restock line items; cancellation is the business
// event that returns stock.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}
