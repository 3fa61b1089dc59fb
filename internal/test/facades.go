package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/repository"
	"github.com/sel3a/sel3a/internal/usecase"
)

// StoreFacadeStub provides controllable behaviour for HTTP layer tests.
// Every operation can be overridden; defaults succeed with zero values.
type StoreFacadeStub struct {
	LoginFn       func(password string) (string, error)
	VerifyTokenFn func(token string) error

	CreateProductFn    func(context.Context, usecase.CreateProductRequest) (string, error)
	ProductFn          func(context.Context, string) (*model.Product, error)
	ProductsFn         func(context.Context, bool) ([]model.Product, error)
	UpdateProductFn    func(context.Context, string, repository.ProductUpdate) error
	SetProductActiveFn func(context.Context, string, bool) error

	ProductStockFn     func(context.Context, string) (int, error)
	RestockProductFn   func(context.Context, string, int) error
	LowStockProductsFn func(context.Context, int) ([]model.Product, error)

	CreateCustomerFn    func(context.Context, usecase.CreateCustomerRequest) (string, error)
	CustomerFn          func(context.Context, string) (*model.Customer, error)
	CustomersFn         func(context.Context, bool) ([]model.Customer, error)
	UpdateCustomerFn    func(context.Context, string, repository.CustomerUpdate) error
	SetCustomerActiveFn func(context.Context, string, bool) error
	SetCustomerStatusFn func(context.Context, string, model.ClientStatus) error

	CreateOrderFn       func(context.Context, usecase.CreateOrderRequest) (string, error)
	OrderFn             func(context.Context, string) (*model.Order, error)
	OrdersFn            func(context.Context, model.OrderFilter, model.OrderSort) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, string, model.OrderStatus) error
	DeleteOrderFn       func(context.Context, string) error
}

func (s StoreFacadeStub) Login(password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(password)
	}
	return "token", nil
}

func (s StoreFacadeStub) VerifyToken(token string) error {
	if s.VerifyTokenFn != nil {
		return s.VerifyTokenFn(token)
	}
	return nil
}

func (s StoreFacadeStub) CreateProduct(ctx context.Context, req usecase.CreateProductRequest) (string, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, req)
	}
	return "prod-1", nil
}

func (s StoreFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Active: true}, nil
}

func (s StoreFacadeStub) Products(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, onlyActive)
	}
	return nil, nil
}

func (s StoreFacadeStub) UpdateProduct(ctx context.Context, id string, upd repository.ProductUpdate) error {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, upd)
	}
	return nil
}

func (s StoreFacadeStub) SetProductActive(ctx context.Context, id string, active bool) error {
	if s.SetProductActiveFn != nil {
		return s.SetProductActiveFn(ctx, id, active)
	}
	return nil
}

func (s StoreFacadeStub) ProductStock(ctx context.Context, id string) (int, error) {
	if s.ProductStockFn != nil {
		return s.ProductStockFn(ctx, id)
	}
	return 0, nil
}

func (s StoreFacadeStub) RestockProduct(ctx context.Context, id string, qty int) error {
	if s.RestockProductFn != nil {
		return s.RestockProductFn(ctx, id, qty)
	}
	return nil
}

func (s StoreFacadeStub) LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	if s.LowStockProductsFn != nil {
		return s.LowStockProductsFn(ctx, threshold)
	}
	return nil, nil
}

func (s StoreFacadeStub) CreateCustomer(ctx context.Context, req usecase.CreateCustomerRequest) (string, error) {
	if s.CreateCustomerFn != nil {
		return s.CreateCustomerFn(ctx, req)
	}
	return "cust-1", nil
}

func (s StoreFacadeStub) Customer(ctx context.Context, id string) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id, Active: true}, nil
}

func (s StoreFacadeStub) Customers(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx, onlyActive)
	}
	return nil, nil
}

func (s StoreFacadeStub) UpdateCustomer(ctx context.Context, id string, upd repository.CustomerUpdate) error {
	if s.UpdateCustomerFn != nil {
		return s.UpdateCustomerFn(ctx, id, upd)
	}
	return nil
}

func (s StoreFacadeStub) SetCustomerActive(ctx context.Context, id string, active bool) error {
	if s.SetCustomerActiveFn != nil {
		return s.SetCustomerActiveFn(ctx, id, active)
	}
	return nil
}

func (s StoreFacadeStub) SetCustomerStatus(ctx context.Context, id string, status model.ClientStatus) error {
	if s.SetCustomerStatusFn != nil {
		return s.SetCustomerStatusFn(ctx, id, status)
	}
	return nil
}

func (s StoreFacadeStub) CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (string, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return "order-1", nil
}

func (s StoreFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

func (s StoreFacadeStub) Orders(ctx context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter, sort)
	}
	return nil, nil
}

func (s StoreFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, status)
	}
	return nil
}

func (s StoreFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

// MonitorFacadeStub mimics worker interactions with the store facade.
type MonitorFacadeStub struct {
	Batches   [][]model.Product
	LowStockFn func(context.Context, int) ([]model.Product, error)

	mu        sync.Mutex
	callCount int32
}

// LowStockProducts returns batches from the configured queue.
func (s *MonitorFacadeStub) LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx, threshold)
	}
	call := atomic.AddInt32(&s.callCount, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}
