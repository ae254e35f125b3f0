package domain

import (
	"reflect"
	"testing"
)

func validInput() Input {
	return Input{
		Customer: Customer{
			Name:     "Sara Ali",
			Phone:    "+201001234567",
			Verified: true,
		},
		Address: &Address{
			Lat:      30.0444,
			Lng:      31.2357,
			District: "Maadi",
			Street:   "Road 9",
			Building: "14",
		},
		ShiftID:       "shift-evening",
		PaymentMethod: "cash_on_delivery",
		ItemsCount:    1,
	}
}

func allRequired() Settings {
	return Settings{RequireOTP: true, RequireLocation: true}
}

func TestValidate_FullyValidInput(t *testing.T) {
	result := Validate(validInput(), allRequired())

	if !result.Ready {
		t.Fatalf("expected ready, got rules %v", result.Rules)
	}
	if len(result.Rules) != 0 {
		t.Errorf("expected no rules, got %d", len(result.Rules))
	}
	if result.FirstMessage != "" {
		t.Errorf("expected empty first message, got %q", result.FirstMessage)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	input := validInput()
	input.Customer.Name = ""
	input.ItemsCount = 0

	first := Validate(input, allRequired())
	second := Validate(input, allRequired())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
}

func TestValidate_EmptyCartBlocksRegardless(t *testing.T) {
	input := validInput()
	input.ItemsCount = 0

	result := Validate(input, allRequired())

	if result.Ready {
		t.Fatal("expected not ready with empty cart")
	}
	if len(result.Rules) != 1 || result.Rules[0].Name != RuleCartItems {
		t.Errorf("expected a single cart_items rule, got %v", result.Rules)
	}
}

func TestValidate_RuleOrderDeterminesFirstMessage(t *testing.T) {
	input := validInput()
	input.Customer.Name = ""
	input.PaymentMethod = ""
	input.ItemsCount = 0

	result := Validate(input, allRequired())

	if result.FirstMessage != "please provide your name" {
		t.Errorf("expected name failure to surface first, got %q", result.FirstMessage)
	}

	names := make([]string, len(result.Rules))
	for i, r := range result.Rules {
		names[i] = r.Name
	}
	expected := []string{RuleCustomerName, RulePaymentMethod, RuleCartItems}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("expected rule order %v, got %v", expected, names)
	}
}

func TestValidate_OTPOnlyWhenRequired(t *testing.T) {
	input := validInput()
	input.Customer.Verified = false

	relaxed := Validate(input, Settings{RequireOTP: false, RequireLocation: true})
	if !relaxed.Ready {
		t.Errorf("expected ready when OTP not required, got %v", relaxed.Rules)
	}

	strict := Validate(input, allRequired())
	if strict.Ready {
		t.Fatal("expected not ready when OTP required and unverified")
	}
	if strict.Rules[0].Name != RuleOTPVerified {
		t.Errorf("expected otp_verification rule, got %s", strict.Rules[0].Name)
	}
}

func TestValidate_AddressNotRequired(t *testing.T) {
	input := validInput()
	input.Address = nil

	result := Validate(input, Settings{RequireOTP: true, RequireLocation: false})

	if !result.Ready {
		t.Errorf("expected ready without address when location not required, got %v", result.Rules)
	}
}

func TestValidate_MissingAddress(t *testing.T) {
	input := validInput()
	input.Address = nil

	result := Validate(input, allRequired())

	if result.Ready {
		t.Fatal("expected not ready without address")
	}
	if result.Rules[0].Message != "please select a delivery address" {
		t.Errorf("unexpected message %q", result.Rules[0].Message)
	}
}

func TestValidate_IncompleteAddressCombinedMessage(t *testing.T) {
	input := validInput()
	input.Address = &Address{Street: "Road 9"}

	result := Validate(input, allRequired())

	if result.Ready {
		t.Fatal("expected not ready with incomplete address")
	}
	if len(result.Rules) != 1 {
		t.Fatalf("expected one combined address rule, got %v", result.Rules)
	}

	want := "selected address is missing: coordinates, district, building number"
	if result.Rules[0].Message != want {
		t.Errorf("expected %q, got %q", want, result.Rules[0].Message)
	}
}

func TestValidate_CoordinateBounds(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		valid    bool
	}{
		{"origin treated as unset", 0, 0, false},
		{"latitude out of range", 91, 10, false},
		{"longitude out of range", 10, 181, false},
		{"southern hemisphere", -33.86, 151.20, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			input.Address.Lat = tc.lat
			input.Address.Lng = tc.lng

			result := Validate(input, allRequired())
			if result.Ready != tc.valid {
				t.Errorf("lat=%v lng=%v: expected ready=%v, got %v", tc.lat, tc.lng, tc.valid, result.Ready)
			}
		})
	}
}
