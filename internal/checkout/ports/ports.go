package ports

import (
	"context"

	"storefront/internal/checkout/domain"
)

// SettingsProvider supplies the store-level checkout toggles. Implementations
// may read a database row or a cache; the validator itself never does I/O.
type SettingsProvider interface {
	// Settings returns the current checkout settings
	Settings(ctx context.Context) (domain.Settings, error)
}

// CustomerSource resolves a customer's checkout-relevant fields
type CustomerSource interface {
	// Get retrieves the customer by id
	Get(ctx context.Context, customerID uint) (*domain.Customer, error)
}
