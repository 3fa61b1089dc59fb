package repository

import (
	"context"

	"github.com/sel3a/sel3a/internal/domain/model"
)

// CustomerUpdate lists customer fields that may change. Nil fields are left
// untouched.
type CustomerUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
}

// CustomerRepository describes persistence operations with customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (string, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, onlyActive bool) ([]model.Customer, error)
	Update(ctx context.Context, id string, upd CustomerUpdate) error
	SetActive(ctx context.Context, id string, active bool) error
	SetClientStatus(ctx context.Context, id string, status model.ClientStatus) error
}
