package adapters

import (
	"context"

	checkoutdomain "storefront/internal/checkout/domain"
	"storefront/internal/customers/ports"
	"storefront/pkg/errors"
)

// Directory exposes the customer repository to the other bounded contexts.
// It satisfies the orders context's CustomerDirectory and the checkout
// context's CustomerSource.
type Directory struct {
	repo ports.CustomerRepository
}

// NewDirectory creates a new customer directory
func NewDirectory(repo ports.CustomerRepository) *Directory {
	return &Directory{repo: repo}
}

// Exists reports whether a customer with the given id exists
func (d *Directory) Exists(ctx context.Context, customerID uint) (bool, error) {
	_, err := d.repo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Get resolves the checkout-relevant customer fields
func (d *Directory) Get(ctx context.Context, customerID uint) (*checkoutdomain.Customer, error) {
	customer, err := d.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &checkoutdomain.Customer{
		Name:     customer.Name,
		Phone:    customer.Phone,
		Verified: customer.Verified,
	}, nil
}
