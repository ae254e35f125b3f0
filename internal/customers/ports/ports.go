package ports

import (
	"context"

	"storefront/internal/customers/domain"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// Create creates a new customer
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by ID
	GetByID(ctx context.Context, id uint) (*domain.Customer, error)

	// GetByPhone retrieves a customer by phone number
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)

	// Update updates an existing customer
	Update(ctx context.Context, customer *domain.Customer) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// PublishCustomerCreated publishes a customer created event
	PublishCustomerCreated(ctx context.Context, customer *domain.Customer) error
}
