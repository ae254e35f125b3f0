package domain

import (
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// allowedTransitions is the fixed transition table. Terminal statuses map to
// an empty set, so every outbound transition from them is rejected.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusDelivered, OrderStatusCanceled},
	OrderStatusDelivered: {},
	OrderStatusCanceled:  {},
}

// ValidStatus reports whether s is a known order status
func ValidStatus(s OrderStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether the order may move from its current status
// to the target status
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range allowedTransitions[o.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outbound transitions
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Order represents the order domain entity
type Order struct {
	ID         uint
	CustomerID uint
	Total      float64
	Status     OrderStatus
	CancelNote string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate validates the order entity
func (o *Order) Validate() error {
	if o.CustomerID == 0 {
		return ErrCustomerIDRequired
	}
	if o.Total <= 0 {
		return ErrInvalidTotal
	}
	return nil
}

// NewOrder creates a new pending order with validation
func NewOrder(customerID uint, total float64) (*Order, error) {
	order := &Order{
		CustomerID: customerID,
		Total:      total,
		Status:     OrderStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Transition applies a status change after checking the transition table.
// The receiver is not mutated when the transition is illegal.
func (o *Order) Transition(target OrderStatus, note string) error {
	if !ValidStatus(target) {
		return NewUnknownStatusError(string(target))
	}
	if !o.CanTransitionTo(target) {
		return NewInvalidTransitionError(o.Status, target)
	}

	o.Status = target
	if target == OrderStatusCanceled {
		o.CancelNote = note
	}
	o.UpdatedAt = time.Now()
	return nil
}
