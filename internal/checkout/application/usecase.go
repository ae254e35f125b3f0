package application

import (
	"context"

	"storefront/internal/checkout/domain"
	"storefront/internal/checkout/ports"
	"storefront/pkg/errors"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// CheckoutUseCase evaluates checkout readiness
type CheckoutUseCase struct {
	settings  ports.SettingsProvider
	customers ports.CustomerSource
	log       *logger.Logger
}

// NewCheckoutUseCase creates a new checkout use case
func NewCheckoutUseCase(settings ports.SettingsProvider, customers ports.CustomerSource, log *logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		settings:  settings,
		customers: customers,
		log:       log,
	}
}

// ValidateInput represents the input for a checkout validation
type ValidateInput struct {
	CustomerID    uint
	Address       *domain.Address
	ShiftID       string
	PaymentMethod string
	ItemsCount    int
}

// ValidateOutput represents the output of a checkout validation
type ValidateOutput struct {
	Result domain.Result
}

// Validate loads the customer and current settings, then runs the pure
// readiness check
func (uc *CheckoutUseCase) Validate(ctx context.Context, input ValidateInput) (*ValidateOutput, error) {
	if input.CustomerID == 0 {
		return nil, errors.NewValidation("customer_id is required", nil)
	}

	customer, err := uc.customers.Get(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	settings, err := uc.settings.Settings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load checkout settings")
	}

	result := domain.Validate(domain.Input{
		Customer:      *customer,
		Address:       input.Address,
		ShiftID:       input.ShiftID,
		PaymentMethod: input.PaymentMethod,
		ItemsCount:    input.ItemsCount,
	}, settings)

	uc.log.WithContext(ctx).Debug("checkout validated",
		zap.Uint("customer_id", input.CustomerID),
		zap.Bool("ready", result.Ready),
		zap.Int("failed_rules", len(result.Rules)),
	)

	return &ValidateOutput{Result: result}, nil
}
