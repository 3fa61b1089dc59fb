package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/repository"
)

// CustomerUseCase manages customer records.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// CreateCustomerRequest is the typed input for customer creation.
type CreateCustomerRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// Create persists a new customer, active by default.
func (u *CustomerUseCase) Create(ctx context.Context, req CreateCustomerRequest) (string, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return "", domainErrors.ErrInvalidInput
	}

	customer := &model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Active:    true,
	}
	return u.customers.Create(ctx, customer)
}

// GetByID fetches a single customer.
func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// List returns customers, optionally only active ones.
func (u *CustomerUseCase) List(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	return u.customers.List(ctx, onlyActive)
}

// Update applies field-level changes.
func (u *CustomerUseCase) Update(ctx context.Context, id string, upd repository.CustomerUpdate) error {
	return u.customers.Update(ctx, id, upd)
}

// SetClientStatus grades the customer.
func (u *CustomerUseCase) SetClientStatus(ctx context.Context, id string, status model.ClientStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidInput
	}
	return u.customers.SetClientStatus(ctx, id, status)
}

// SetActive soft-deletes or revives a customer.
func (u *CustomerUseCase) SetActive(ctx context.Context, id string, active bool) error {
	return u.customers.SetActive(ctx, id, active)
}
