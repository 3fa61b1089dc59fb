package app

import (
	"context"

	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/repository"
	"github.com/sel3a/sel3a/internal/usecase"
)

// StoreFacade aggregates the store use cases behind a single surface
// consumed by the HTTP layer and the stock monitor.
type StoreFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	inventory *usecase.InventoryUseCase
	customers *usecase.CustomerUseCase
	orders    *usecase.OrderUseCase
}

func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	inventory *usecase.InventoryUseCase,
	customers *usecase.CustomerUseCase,
	orders *usecase.OrderUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:      auth,
		catalog:   catalog,
		inventory: inventory,
		customers: customers,
		orders:    orders,
	}
}

func (f *StoreFacade) Login(password string) (string, error) {
	return f.auth.Authenticate(password)
}

func (f *StoreFacade) VerifyToken(token string) error {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, req usecase.CreateProductRequest) (string, error) {
	return f.catalog.Create(ctx, req)
}

func (f *StoreFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.GetByID(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	return f.catalog.List(ctx, onlyActive)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, id string, upd repository.ProductUpdate) error {
	return f.catalog.Update(ctx, id, upd)
}

func (f *StoreFacade) SetProductActive(ctx context.Context, id string, active bool) error {
	return f.catalog.SetActive(ctx, id, active)
}

func (f *StoreFacade) ProductStock(ctx context.Context, id string) (int, error) {
	return f.inventory.Stock(ctx, id)
}

func (f *StoreFacade) RestockProduct(ctx context.Context, id string, qty int) error {
	return f.inventory.Restock(ctx, id, qty)
}

func (f *StoreFacade) LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	return f.inventory.LowStock(ctx, threshold)
}

func (f *StoreFacade) CreateCustomer(ctx context.Context, req usecase.CreateCustomerRequest) (string, error) {
	return f.customers.Create(ctx, req)
}

func (f *StoreFacade) Customer(ctx context.Context, id string) (*model.Customer, error) {
	return f.customers.GetByID(ctx, id)
}

func (f *StoreFacade) Customers(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	return f.customers.List(ctx, onlyActive)
}

func (f *StoreFacade) UpdateCustomer(ctx context.Context, id string, upd repository.CustomerUpdate) error {
	return f.customers.Update(ctx, id, upd)
}

func (f *StoreFacade) SetCustomerActive(ctx context.Context, id string, active bool) error {
	return f.customers.SetActive(ctx, id, active)
}

func (f *StoreFacade) SetCustomerStatus(ctx context.Context, id string, status model.ClientStatus) error {
	return f.customers.SetClientStatus(ctx, id, status)
}

func (f *StoreFacade) CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (string, error) {
	return f.orders.Create(ctx, req)
}

func (f *StoreFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *StoreFacade) Orders(ctx context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error) {
	return f.orders.List(ctx, filter, sort)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *StoreFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}
