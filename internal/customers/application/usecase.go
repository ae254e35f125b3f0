package application

import (
	"context"

	"storefront/internal/customers/domain"
	"storefront/internal/customers/ports"
	"storefront/pkg/errors"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// CustomerUseCase handles customer business logic
type CustomerUseCase struct {
	repo      ports.CustomerRepository
	publisher ports.EventPublisher
	log       *logger.Logger
}

// NewCustomerUseCase creates a new customer use case
func NewCustomerUseCase(repo ports.CustomerRepository, publisher ports.EventPublisher, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// RegisterInput represents the input for registering a customer
type RegisterInput struct {
	Name  string
	Phone string
}

// RegisterOutput represents the output of registering a customer
type RegisterOutput struct {
	Customer *domain.Customer
}

// Register creates a new customer
func (uc *CustomerUseCase) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	// Create domain entity with validation
	customer, err := domain.NewCustomer(input.Name, input.Phone)
	if err != nil {
		return nil, err
	}

	// Check if phone already exists
	existing, err := uc.repo.GetByPhone(ctx, customer.Phone)
	if err != nil && !errors.Is(err, errors.CodeNotFound) {
		return nil, errors.NewInternal("failed to check phone existence", err)
	}
	if existing != nil {
		return nil, domain.ErrPhoneExists
	}

	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, errors.NewInternal("failed to create customer", err)
	}

	// Publish event (best effort, don't fail on error)
	if uc.publisher != nil {
		if err := uc.publisher.PublishCustomerCreated(ctx, customer); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish customer created event",
				zap.Error(err),
				zap.Uint("customer_id", customer.ID),
			)
		}
	}

	uc.log.WithContext(ctx).Info("customer registered",
		zap.Uint("customer_id", customer.ID),
		zap.String("phone", customer.Phone),
	)

	return &RegisterOutput{Customer: customer}, nil
}

// GetCustomerInput represents the input for getting a customer
type GetCustomerInput struct {
	ID uint
}

// GetCustomerOutput represents the output of getting a customer
type GetCustomerOutput struct {
	Customer *domain.Customer
}

// GetCustomer retrieves a customer by ID
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, input GetCustomerInput) (*GetCustomerOutput, error) {
	customer, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetCustomerOutput{Customer: customer}, nil
}

// VerifyInput represents the input for marking a customer verified
type VerifyInput struct {
	ID uint
}

// VerifyOutput represents the output of marking a customer verified
type VerifyOutput struct {
	Customer *domain.Customer
}

// Verify marks the customer's phone as OTP-verified. The OTP exchange itself
// happens upstream; this records its successful outcome.
func (uc *CustomerUseCase) Verify(ctx context.Context, input VerifyInput) (*VerifyOutput, error) {
	customer, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !customer.Verified {
		customer.MarkVerified()
		if err := uc.repo.Update(ctx, customer); err != nil {
			return nil, errors.NewInternal("failed to update customer", err)
		}

		uc.log.WithContext(ctx).Info("customer verified",
			zap.Uint("customer_id", customer.ID),
		)
	}

	return &VerifyOutput{Customer: customer}, nil
}
