package money

import (
	"github.com/shopspring/decimal"

	domainErrors "github.com/sel3a/sel3a/internal/domain/errors"
)

// Money is an exact decimal amount of currency. The zero value is zero money.
type Money struct {
	amount decimal.Decimal
}

// Parse builds Money from a decimal string such as "19.99".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, domainErrors.ErrInvalidAmount
	}
	return Money{amount: d}, nil
}

// MustParse is Parse for trusted literals, panicking on malformed input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic("money: malformed literal " + s)
	}
	return m
}

// Zero returns zero money.
func Zero() Money {
	return Money{}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
// Multiplying a decimal by an integer never loses precision.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Cmp compares amounts: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal reports whether two amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String formats the amount with two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
