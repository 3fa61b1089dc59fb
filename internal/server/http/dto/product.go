package dto

import "time"

// CreateProductRequest describes a new catalog entry payload. Price is a
// decimal string such as "19.99".
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Ref         string `json:"ref"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Quantity    int    `json:"quantity"`
	Category    string `json:"category"`
	Supplier    string `json:"supplier"`
}

// UpdateProductRequest carries optional catalog field changes. Absent fields
// are left untouched; stock is never updated through this payload.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Ref         *string `json:"ref"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	Supplier    *string `json:"supplier"`
}

// ProductResponse is the catalog entry representation.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Ref         string    `json:"ref,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category,omitempty"`
	Supplier    string    `json:"supplier,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// StockResponse reports the current quantity for a product.
type StockResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RestockRequest returns units to stock.
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// SetActiveRequest toggles soft deletion.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
