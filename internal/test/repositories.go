package test

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/repository"
)

// ProductRepositoryStub keeps products in memory. Stock mutations run under
// a mutex so the check-and-decrement contract matches the storage layer's
// atomic conditional update.
type ProductRepositoryStub struct {
	mu       sync.Mutex
	Products map[string]*model.Product
	next     int

	Err       error
	ReserveFn func(ctx context.Context, id string, qty int) error
	RestockFn func(ctx context.Context, id string, qty int) error

	Reserved  []StockCall
	Restocked []StockCall
}

// StockCall records a single ledger invocation.
type StockCall struct {
	ProductID string
	Quantity  int
}

// NewProductRepositoryStub constructs the stub with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[string]*model.Product)}
}

// Seed inserts a product and returns its generated id.
func (s *ProductRepositoryStub) Seed(p model.Product) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if p.ID == "" {
		p.ID = fmt.Sprintf("prod-%d", s.next)
	}
	stored := p
	s.Products[stored.ID] = &stored
	return stored.ID
}

func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Seed(*p), nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.Products[id]; ok {
		stored := *p
		return &stored, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Product
	for _, p := range s.Products {
		if onlyActive && !p.Active {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, id string, upd repository.ProductUpdate) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Ref != nil {
		p.Ref = *upd.Ref
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Supplier != nil {
		p.Supplier = *upd.Supplier
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (s *ProductRepositoryStub) SetActive(ctx context.Context, id string, active bool) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	p.Active = active
	p.UpdatedAt = time.Now()
	return nil
}

// ReserveStock performs the atomic check-and-decrement under the stub mutex.
func (s *ProductRepositoryStub) ReserveStock(ctx context.Context, id string, qty int) error {
	if s.ReserveFn != nil {
		return s.ReserveFn(ctx, id, qty)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrProductNotFound
	}
	if p.Quantity < qty {
		return &domainErrors.InsufficientStockError{ProductID: id, Available: p.Quantity, Requested: qty}
	}
	p.Quantity -= qty
	p.UpdatedAt = time.Now()
	s.Reserved = append(s.Reserved, StockCall{ProductID: id, Quantity: qty})
	return nil
}

func (s *ProductRepositoryStub) RestockStock(ctx context.Context, id string, qty int) error {
	if s.RestockFn != nil {
		return s.RestockFn(ctx, id, qty)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrProductNotFound
	}
	p.Quantity += qty
	p.UpdatedAt = time.Now()
	s.Restocked = append(s.Restocked, StockCall{ProductID: id, Quantity: qty})
	return nil
}

func (s *ProductRepositoryStub) Stock(ctx context.Context, id string) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok {
		return 0, domainErrors.ErrProductNotFound
	}
	return p.Quantity, nil
}

func (s *ProductRepositoryStub) ListLowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Product
	for _, p := range s.Products {
		if p.Active && p.Quantity <= threshold {
			result = append(result, *p)
		}
	}
	return result, nil
}

// OrderRepositoryStub keeps orders in memory with overridable behaviour.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[string]*model.Order
	next   int

	CreateFn       func(ctx context.Context, order *model.Order) (string, error)
	UpdateStatusFn func(ctx context.Context, id string, from, to model.OrderStatus) error

	StatusUpdates []StatusUpdateCall
	Deleted       []string
}

// StatusUpdateCall records a persisted status change.
type StatusUpdateCall struct {
	OrderID string
	Status  model.OrderStatus
}

// NewOrderRepositoryStub constructs the stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := fmt.Sprintf("order-%d", s.next)
	stored := *order
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Orders[id] = &stored
	return id, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.Orders[id]; ok {
		stored := *o
		return &stored, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter, sort model.OrderSort) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		result = append(result, *o)
	}
	return result, nil
}

// UpdateStatus mirrors the storage layer's compare-and-swap: the write only
// lands while the stored status still equals from.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, from, to)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if o.Status != from {
		return &domainErrors.InvalidTransitionError{From: string(o.Status), To: string(to)}
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	s.StatusUpdates = append(s.StatusUpdates, StatusUpdateCall{OrderID: id, Status: to})
	return nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// CustomerRepositoryStub keeps customers in memory.
type CustomerRepositoryStub struct {
	mu        sync.Mutex
	Customers map[string]*model.Customer
	next      int
	Err       error
}

// NewCustomerRepositoryStub constructs the stub with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Customers: make(map[string]*model.Customer)}
}

// Seed inserts a customer and returns its generated id.
func (s *CustomerRepositoryStub) Seed(c model.Customer) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if c.ID == "" {
		c.ID = fmt.Sprintf("cust-%d", s.next)
	}
	stored := c
	s.Customers[stored.ID] = &stored
	return stored.ID
}

func (s *CustomerRepositoryStub) Create(ctx context.Context, c *model.Customer) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Seed(*c), nil
}

func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.Customers[id]; ok {
		stored := *c
		return &stored, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CustomerRepositoryStub) List(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Customer
	for _, c := range s.Customers {
		if onlyActive && !c.Active {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (s *CustomerRepositoryStub) Update(ctx context.Context, id string, upd repository.CustomerUpdate) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Customers[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if upd.FirstName != nil {
		c.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		c.LastName = *upd.LastName
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	c.UpdatedAt = time.Now()
	return nil
}

func (s *CustomerRepositoryStub) SetActive(ctx context.Context, id string, active bool) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Customers[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	c.Active = active
	c.UpdatedAt = time.Now()
	return nil
}

func (s *CustomerRepositoryStub) SetClientStatus(ctx context.Context, id string, status model.ClientStatus) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Customers[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	c.ClientStatus = status
	c.UpdatedAt = time.Now()
	return nil
}
