package dto

import "time"

// OrderLineRequest is a product/quantity pair inside an order payload.
type OrderLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// CreateOrderRequest describes a new order payload. OrderDate is optional
// and defaults to the current time.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	Lines      []OrderLineRequest `json:"lines" binding:"required"`
	OrderDate  *time.Time         `json:"order_date"`
}

// UpdateOrderStatusRequest moves an order through its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderLineResponse is a line item with the captured unit price.
type OrderLineResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

// OrderResponse is the order representation enriched with the customer
// display name and the localized status label.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Lines        []OrderLineResponse `json:"lines"`
	Status       string              `json:"status"`
	StatusLabel  string              `json:"status_label"`
	TotalPrice   string              `json:"total_price"`
	OrderDate    time.Time           `json:"order_date"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
