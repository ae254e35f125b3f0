package domain

import "storefront/pkg/errors"

// Domain-specific errors
var (
	ErrNameRequired     = errors.NewValidation("name is required", nil)
	ErrNameLength       = errors.NewValidation("name must be between 2 and 100 characters", nil)
	ErrPhoneRequired    = errors.NewValidation("phone is required", nil)
	ErrPhoneInvalid     = errors.NewValidation("phone number is invalid", nil)
	ErrPhoneExists      = errors.NewConflict("phone number already registered")
	ErrCustomerNotFound = errors.NewNotFound("customer", "unknown")
)

// NewCustomerNotFound creates a not found error with the customer ID
func NewCustomerNotFound(id uint) error {
	return errors.NewNotFound("customer", id)
}
