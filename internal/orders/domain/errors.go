package domain

import "storefront/pkg/errors"

// Domain-specific errors
var (
	ErrCustomerIDRequired = errors.NewValidation("customer_id is required", nil)
	ErrInvalidTotal       = errors.NewValidation("total must be greater than 0", nil)
	ErrStatusRequired     = errors.NewValidation("status is required", nil)
	ErrOrderNotFound      = errors.NewNotFound("order", "unknown")
)

// NewOrderNotFound creates a not found error with the order ID
func NewOrderNotFound(id uint) error {
	return errors.NewNotFound("order", id)
}

// NewUnknownStatusError creates a validation error for an unrecognized status
func NewUnknownStatusError(status string) error {
	return errors.NewValidation("unknown order status", map[string]interface{}{
		"status": status,
	})
}

// NewInvalidTransitionError creates an illegal transition error naming both statuses
func NewInvalidTransitionError(from, to OrderStatus) error {
	return errors.NewInvalidTransition(string(from), string(to))
}

// NewCustomerNotFoundError creates a validation error for order creation
func NewCustomerNotFoundError(customerID uint) error {
	return errors.NewValidation("customer not found", map[string]interface{}{
		"customer_id": customerID,
	})
}
