package model

import "time"

// ClientStatus grades how trustworthy a customer is.
type ClientStatus string

const (
	ClientStatusGood    ClientStatus = "good_client"
	ClientStatusBad     ClientStatus = "bad_client"
	ClientStatusTrusted ClientStatus = "trusted"
)

// Valid reports whether s is a known client status.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusGood, ClientStatusBad, ClientStatusTrusted:
		return true
	}
	return false
}

// Customer describes a buyer record.
type Customer struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	Active       bool
	ClientStatus ClientStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is the name orders are enriched with.
func (c Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
