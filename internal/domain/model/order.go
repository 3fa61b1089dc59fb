package model

import (
	"time"

	"github.com/sel3a/sel3a/internal/domain/money"
)

// OrderLine is a single product/quantity pair inside an order. UnitPrice is
// the product price captured at order time; totals are never recomputed from
// the catalog afterwards.
type OrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice money.Money
}

// Total returns unit price multiplied by quantity.
func (l OrderLine) Total() money.Money {
	return l.UnitPrice.MulInt(l.Quantity)
}

// Order describes a customer order with its line items.
type Order struct {
	ID           string
	CustomerID   string
	CustomerName string
	Lines        []OrderLine
	Status       OrderStatus
	TotalPrice   money.Money
	OrderDate    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderFilter narrows order listings. Zero value matches all orders.
type OrderFilter struct {
	CustomerID string
	Status     OrderStatus
}

// OrderSort selects listing order.
type OrderSort string

const (
	OrderSortDateDesc OrderSort = "date_desc"
	OrderSortDateAsc  OrderSort = "date_asc"
)
