package handlers

import (
	"context"

	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/repository"
	"github.com/sel3a/sel3a/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(password string) (string, error)
	VerifyToken(token string) error
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, req usecase.CreateProductRequest) (string, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	Products(ctx context.Context, onlyActive bool) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, upd repository.ProductUpdate) error
	SetProductActive(ctx context.Context, id string, active bool) error
}

// InventoryFacade provides stock level operations.
type InventoryFacade interface {
	ProductStock(ctx context.Context, id string) (int, error)
	RestockProduct(ctx context.Context, id string, qty int) error
	LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	CreateCustomer(ctx context.Context, req usecase.CreateCustomerRequest) (string, error)
	Customer(ctx context.Context, id string) (*model.Customer, error)
	Customers(ctx context.Context, onlyActive bool) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, upd repository.CustomerUpdate) error
	SetCustomerActive(ctx context.Context, id string, active bool) error
	SetCustomerStatus(ctx context.Context, id string, status model.ClientStatus) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (string, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
	DeleteOrder(ctx context.Context, id string) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	InventoryFacade
	CustomerFacade
	OrderFacade
}
