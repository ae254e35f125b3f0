package domain

import "strings"

// Rule names, in evaluation order
const (
	RuleCustomerName  = "customer_name"
	RuleCustomerPhone = "customer_phone"
	RuleOTPVerified   = "otp_verification"
	RuleAddress       = "delivery_address"
	RuleShift         = "delivery_shift"
	RulePaymentMethod = "payment_method"
	RuleCartItems     = "cart_items"
)

// SeverityError marks a rule failure that blocks checkout
const SeverityError = "error"

// Customer carries the checkout-relevant customer fields
type Customer struct {
	Name     string
	Phone    string
	Verified bool
}

// Address is a selected delivery address
type Address struct {
	Lat      float64
	Lng      float64
	District string
	Street   string
	Building string
}

// Settings are the store-level checkout toggles
type Settings struct {
	RequireOTP      bool
	RequireLocation bool
}

// Input aggregates everything the validator needs. It is request-scoped and
// never persisted.
type Input struct {
	Customer      Customer
	Address       *Address
	ShiftID       string
	PaymentMethod string
	ItemsCount    int
}

// RuleResult is one failed rule
type RuleResult struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Result is the validator output
type Result struct {
	Rules        []RuleResult `json:"rules"`
	Ready        bool         `json:"ready"`
	FirstMessage string       `json:"first_message,omitempty"`
}

// Validate computes checkout readiness. It is pure: no I/O, identical input
// yields identical output. Rules run in fixed order so the first surfaced
// message is stable.
func Validate(input Input, settings Settings) Result {
	var rules []RuleResult

	fail := func(name, message string) {
		rules = append(rules, RuleResult{
			Name:     name,
			Severity: SeverityError,
			Message:  message,
		})
	}

	if strings.TrimSpace(input.Customer.Name) == "" {
		fail(RuleCustomerName, "please provide your name")
	}

	if strings.TrimSpace(input.Customer.Phone) == "" {
		fail(RuleCustomerPhone, "please provide your phone number")
	}

	if settings.RequireOTP && !input.Customer.Verified {
		fail(RuleOTPVerified, "please verify your phone number")
	}

	if settings.RequireLocation {
		if input.Address == nil {
			fail(RuleAddress, "please select a delivery address")
		} else if missing := missingAddressFields(input.Address); len(missing) > 0 {
			fail(RuleAddress, "selected address is missing: "+strings.Join(missing, ", "))
		}
	}

	if strings.TrimSpace(input.ShiftID) == "" {
		fail(RuleShift, "please select a delivery shift")
	}

	if strings.TrimSpace(input.PaymentMethod) == "" {
		fail(RulePaymentMethod, "please select a payment method")
	}

	if input.ItemsCount <= 0 {
		fail(RuleCartItems, "your cart is empty")
	}

	result := Result{
		Rules: rules,
		Ready: len(rules) == 0,
	}
	if len(rules) > 0 {
		result.FirstMessage = rules[0].Message
	}
	return result
}

// missingAddressFields reports absent sub-fields in fixed order: coordinates,
// district, street, building number.
func missingAddressFields(a *Address) []string {
	var missing []string
	if !validCoordinates(a.Lat, a.Lng) {
		missing = append(missing, "coordinates")
	}
	if strings.TrimSpace(a.District) == "" {
		missing = append(missing, "district")
	}
	if strings.TrimSpace(a.Street) == "" {
		missing = append(missing, "street")
	}
	if strings.TrimSpace(a.Building) == "" {
		missing = append(missing, "building number")
	}
	return missing
}

func validCoordinates(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
