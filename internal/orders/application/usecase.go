package application

import (
	"context"
	"time"

	"storefront/internal/orders/domain"
	"storefront/internal/orders/ports"
	"storefront/pkg/errors"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// OrderUseCase handles order business logic
type OrderUseCase struct {
	repo       ports.OrderRepository
	dispatcher ports.NotificationDispatcher
	customers  ports.CustomerDirectory
	log        *logger.Logger
}

// NewOrderUseCase creates a new order use case
func NewOrderUseCase(
	repo ports.OrderRepository,
	dispatcher ports.NotificationDispatcher,
	customers ports.CustomerDirectory,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		customers:  customers,
		log:        log,
	}
}

// CreateOrderInput represents the input for creating an order
type CreateOrderInput struct {
	CustomerID uint
	Total      float64
}

// CreateOrderOutput represents the output of creating an order
type CreateOrderOutput struct {
	Order *domain.Order
}

// CreateOrder creates a new pending order
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	// Validate customer exists
	if uc.customers != nil {
		exists, err := uc.customers.Exists(ctx, input.CustomerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to validate customer")
		}
		if !exists {
			return nil, domain.NewCustomerNotFoundError(input.CustomerID)
		}
	}

	// Create domain entity with validation
	order, err := domain.NewOrder(input.CustomerID, input.Total)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, errors.NewInternal("failed to create order", err)
	}

	// Publish event (best effort, don't fail on error)
	if uc.dispatcher != nil {
		if err := uc.dispatcher.DispatchOrderCreated(ctx, order); err != nil {
			uc.log.WithContext(ctx).Error("failed to dispatch order created notification",
				zap.Error(err),
				zap.Uint("order_id", order.ID),
			)
		}
	}

	uc.log.WithContext(ctx).Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.Float64("total", order.Total),
	)

	return &CreateOrderOutput{Order: order}, nil
}

// ChangeStatusInput represents the input for a status transition
type ChangeStatusInput struct {
	OrderID uint
	Status  domain.OrderStatus
	Note    string
}

// ChangeStatusOutput separates the transition outcome from the best-effort
// notification outcome so callers can assert on each independently
type ChangeStatusOutput struct {
	OrderID          uint
	OldStatus        domain.OrderStatus
	NewStatus        domain.OrderStatus
	UpdatedAt        time.Time
	NotificationSent bool
}

// ChangeStatus validates and applies a status transition. Illegal transitions
// fail without mutating the stored order. A notification dispatch failure is
// logged and reported through NotificationSent, never through the error.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*ChangeStatusOutput, error) {
	if input.OrderID == 0 {
		return nil, errors.NewValidation("order_id is required", nil)
	}
	if input.Status == "" {
		return nil, domain.ErrStatusRequired
	}

	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if err := order.Transition(input.Status, input.Note); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, order); err != nil {
		return nil, errors.NewInternal("failed to update order status", err)
	}

	notified := false
	if uc.dispatcher != nil {
		if err := uc.dispatcher.DispatchStatusChanged(ctx, order, oldStatus); err != nil {
			uc.log.WithContext(ctx).Error("failed to dispatch status notification",
				zap.Error(err),
				zap.Uint("order_id", order.ID),
				zap.String("new_status", string(order.Status)),
			)
		} else {
			notified = true
		}
	}

	uc.log.WithContext(ctx).Info("order status changed",
		zap.Uint("order_id", order.ID),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(order.Status)),
		zap.Bool("notification_sent", notified),
	)

	return &ChangeStatusOutput{
		OrderID:          order.ID,
		OldStatus:        oldStatus,
		NewStatus:        order.Status,
		UpdatedAt:        order.UpdatedAt,
		NotificationSent: notified,
	}, nil
}

// GetOrderInput represents the input for getting an order
type GetOrderInput struct {
	ID uint
}

// GetOrderOutput represents the output of getting an order
type GetOrderOutput struct {
	Order *domain.Order
}

// GetOrder retrieves an order by ID
func (uc *OrderUseCase) GetOrder(ctx context.Context, input GetOrderInput) (*GetOrderOutput, error) {
	order, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOrderOutput{Order: order}, nil
}

// ListByCustomerInput represents the input for listing a customer's orders
type ListByCustomerInput struct {
	CustomerID uint
}

// ListByCustomerOutput represents the output of listing a customer's orders
type ListByCustomerOutput struct {
	Orders []*domain.Order
}

// ListByCustomer retrieves all orders for a customer
func (uc *OrderUseCase) ListByCustomer(ctx context.Context, input ListByCustomerInput) (*ListByCustomerOutput, error) {
	orders, err := uc.repo.GetByCustomerID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	return &ListByCustomerOutput{Orders: orders}, nil
}
