package domain

import (
	"regexp"
	"time"
)

// Customer represents the customer domain entity
type Customer struct {
	ID        uint
	Name      string
	Phone     string
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PhoneRegex is the pattern for validating phone numbers (E.164-ish)
var PhoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// Validate validates the customer entity
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if len(c.Name) < 2 || len(c.Name) > 100 {
		return ErrNameLength
	}
	if c.Phone == "" {
		return ErrPhoneRequired
	}
	if !PhoneRegex.MatchString(c.Phone) {
		return ErrPhoneInvalid
	}
	return nil
}

// NewCustomer creates a new unverified customer with validation
func NewCustomer(name, phone string) (*Customer, error) {
	customer := &Customer{
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	return customer, nil
}

// MarkVerified flags the customer's phone as OTP-verified
func (c *Customer) MarkVerified() {
	c.Verified = true
	c.UpdatedAt = time.Now()
}
