package ports

import (
	"context"

	"storefront/internal/orders/domain"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id uint) (*domain.Order, error)

	// UpdateStatus persists a status change in a single update
	UpdateStatus(ctx context.Context, order *domain.Order) error

	// GetByCustomerID retrieves orders for a customer
	GetByCustomerID(ctx context.Context, customerID uint) ([]*domain.Order, error)
}

// NotificationDispatcher defines the interface for status-change notifications.
// Dispatch failures are best-effort and must never abort the transition.
type NotificationDispatcher interface {
	// DispatchOrderCreated announces a newly created order
	DispatchOrderCreated(ctx context.Context, order *domain.Order) error

	// DispatchStatusChanged announces a status transition; oldStatus is the
	// status before the transition was applied
	DispatchStatusChanged(ctx context.Context, order *domain.Order, oldStatus domain.OrderStatus) error
}

// CustomerDirectory defines the interface for customer existence checks
type CustomerDirectory interface {
	// Exists reports whether a customer with the given id exists
	Exists(ctx context.Context, customerID uint) (bool, error)
}
