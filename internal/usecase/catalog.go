package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
	"github.com/sel3a/sel3a/internal/domain/model"
	"github.com/sel3a/sel3a/internal/domain/money"
	"github.com/sel3a/sel3a/internal/domain/repository"
)

// CatalogUseCase manages product catalog entries. Stock quantities are the
// inventory ledger's business; this use case only seeds the initial count.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// CreateProductRequest is the typed input for catalog creation. Price is a
// decimal string.
type CreateProductRequest struct {
	Name        string
	Ref         string
	Description string
	Price       string
	Quantity    int
	Category    string
	Supplier    string
}

// Create validates and persists a new catalog entry, active by default.
func (u *CatalogUseCase) Create(ctx context.Context, req CreateProductRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", domainErrors.ErrInvalidInput
	}

	price, err := money.Parse(req.Price)
	if err != nil {
		return "", err
	}
	if price.IsNegative() {
		return "", domainErrors.ErrInvalidAmount
	}
	if req.Quantity < 0 {
		return "", domainErrors.ErrInvalidQuantity
	}

	product := &model.Product{
		Name:        req.Name,
		Ref:         req.Ref,
		Description: req.Description,
		Price:       price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Supplier:    req.Supplier,
		Active:      true,
	}
	return u.products.Create(ctx, product)
}

// GetByID fetches a single product.
func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns catalog entries, optionally only active ones.
func (u *CatalogUseCase) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	return u.products.List(ctx, onlyActive)
}

// Update applies field-level changes. A price change must parse as a
// non-negative decimal.
func (u *CatalogUseCase) Update(ctx context.Context, id string, upd repository.ProductUpdate) error {
	if upd.Price != nil {
		price, err := money.Parse(*upd.Price)
		if err != nil {
			return err
		}
		if price.IsNegative() {
			return domainErrors.ErrInvalidAmount
		}
	}
	return u.products.Update(ctx, id, upd)
}

// SetActive soft-deletes or revives a product. Products referenced by order
// lines are never removed, only deactivated.
func (u *CatalogUseCase) SetActive(ctx context.Context, id string, active bool) error {
	return u.products.SetActive(ctx, id, active)
}
