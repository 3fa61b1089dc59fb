package model

import domainErrors "github.com/sel3a/sel3a/internal/domain/errors"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusFailed         OrderStatus = "failed"
)

// successor holds the single forward edge of the lifecycle graph.
var successor = map[OrderStatus]OrderStatus{
	OrderStatusPending:        OrderStatusConfirmed,
	OrderStatusConfirmed:      OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusShipped,
	OrderStatusShipped:        OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
	OrderStatusDelivered:      OrderStatusCompleted,
}

// Valid reports whether s is a known lifecycle state.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusShipped, OrderStatusOutForDelivery, OrderStatusDelivered,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no transition may leave s.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s: the single
// forward edge, or cancelled/failed from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == OrderStatusCancelled || next == OrderStatusFailed {
		return true
	}
	return successor[s] == next
}

// TransitionPlan carries the validated target state and the side effect the
// caller must apply. The machine itself never touches inventory or storage.
type TransitionPlan struct {
	From    OrderStatus
	To      OrderStatus
	Restock bool
}

// PlanTransition validates a status change and returns the plan to apply.
// Only the cancellation edge carries a restock side effect.
func PlanTransition(from, to OrderStatus) (TransitionPlan, error) {
	if !from.CanTransitionTo(to) {
		return TransitionPlan{}, &domainErrors.InvalidTransitionError{From: string(from), To: string(to)}
	}
	return TransitionPlan{From: from, To: to, Restock: to == OrderStatusCancelled}, nil
}
