package model

import (
	"time"

	"github.com/sel3a/sel3a/internal/domain/money"
)

// Product describes a catalog entry. Quantity is the authoritative stock
// count and is mutated only through the inventory ledger.
type Product struct {
	ID          string
	Name        string
	Ref         string
	Description string
	Price       money.Money
	Quantity    int
	Category    string
	Supplier    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
