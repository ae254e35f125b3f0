package application

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/orders/domain"
	"storefront/pkg/errors"
	"storefront/pkg/logger"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	orders map[uint]*domain.Order
	nextID uint
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uint]*domain.Order),
		nextID: 1,
	}
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.ID = m.nextID
	m.nextID++
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.NewOrderNotFound(id)
	}
	clone := *order
	return &clone, nil
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, order *domain.Order) error {
	stored, ok := m.orders[order.ID]
	if !ok {
		return domain.NewOrderNotFound(order.ID)
	}
	stored.Status = order.Status
	stored.CancelNote = order.CancelNote
	stored.UpdatedAt = order.UpdatedAt
	return nil
}

func (m *MockOrderRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, order := range m.orders {
		if order.CustomerID == customerID {
			clone := *order
			result = append(result, &clone)
		}
	}
	return result, nil
}

// MockDispatcher is a mock implementation of NotificationDispatcher
type MockDispatcher struct {
	created     []uint
	transitions []string
	fail        bool
}

func (m *MockDispatcher) DispatchOrderCreated(ctx context.Context, order *domain.Order) error {
	if m.fail {
		return fmt.Errorf("broker unavailable")
	}
	m.created = append(m.created, order.ID)
	return nil
}

func (m *MockDispatcher) DispatchStatusChanged(ctx context.Context, order *domain.Order, oldStatus domain.OrderStatus) error {
	if m.fail {
		return fmt.Errorf("broker unavailable")
	}
	m.transitions = append(m.transitions, string(oldStatus)+"->"+string(order.Status))
	return nil
}

// MockCustomerDirectory is a mock implementation of CustomerDirectory
type MockCustomerDirectory struct {
	known map[uint]bool
}

func NewMockCustomerDirectory() *MockCustomerDirectory {
	return &MockCustomerDirectory{known: map[uint]bool{1: true}}
}

func (m *MockCustomerDirectory) Exists(ctx context.Context, customerID uint) (bool, error) {
	return m.known[customerID], nil
}

func newUseCase() (*OrderUseCase, *MockOrderRepository, *MockDispatcher) {
	repo := NewMockOrderRepository()
	dispatcher := &MockDispatcher{}
	customers := NewMockCustomerDirectory()
	log := logger.New("test", "debug")
	return NewOrderUseCase(repo, dispatcher, customers, log), repo, dispatcher
}

func createPendingOrder(t *testing.T, uc *OrderUseCase) *domain.Order {
	t.Helper()
	output, err := uc.CreateOrder(context.Background(), CreateOrderInput{CustomerID: 1, Total: 49.50})
	if err != nil {
		t.Fatalf("failed to create fixture order: %v", err)
	}
	return output.Order
}

func TestCreateOrder_Success(t *testing.T) {
	// Arrange
	uc, _, dispatcher := newUseCase()

	// Act
	output, err := uc.CreateOrder(context.Background(), CreateOrderInput{CustomerID: 1, Total: 99.99})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Order.Status != domain.OrderStatusPending {
		t.Errorf("expected status PENDING, got %s", output.Order.Status)
	}

	if len(dispatcher.created) != 1 {
		t.Errorf("expected 1 created notification, got %d", len(dispatcher.created))
	}
}

func TestCreateOrder_CustomerNotFound(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.CreateOrder(context.Background(), CreateOrderInput{CustomerID: 999, Total: 99.99})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestChangeStatus_PendingToDelivered(t *testing.T) {
	// Arrange
	uc, repo, dispatcher := newUseCase()
	order := createPendingOrder(t, uc)

	// Act
	output, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: order.ID,
		Status:  domain.OrderStatusDelivered,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.OldStatus != domain.OrderStatusPending {
		t.Errorf("expected old status PENDING, got %s", output.OldStatus)
	}
	if output.NewStatus != domain.OrderStatusDelivered {
		t.Errorf("expected new status DELIVERED, got %s", output.NewStatus)
	}
	if !output.NotificationSent {
		t.Error("expected notification to be sent")
	}

	stored, _ := repo.GetByID(context.Background(), order.ID)
	if stored.Status != domain.OrderStatusDelivered {
		t.Errorf("expected stored status DELIVERED, got %s", stored.Status)
	}
	if len(dispatcher.transitions) != 1 || dispatcher.transitions[0] != "PENDING->DELIVERED" {
		t.Errorf("unexpected dispatched transitions: %v", dispatcher.transitions)
	}
}

func TestChangeStatus_PendingToCanceledWithNote(t *testing.T) {
	uc, repo, _ := newUseCase()
	order := createPendingOrder(t, uc)

	output, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: order.ID,
		Status:  domain.OrderStatusCanceled,
		Note:    "customer requested",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.NewStatus != domain.OrderStatusCanceled {
		t.Errorf("expected new status CANCELED, got %s", output.NewStatus)
	}

	stored, _ := repo.GetByID(context.Background(), order.ID)
	if stored.CancelNote != "customer requested" {
		t.Errorf("expected cancel note persisted, got %q", stored.CancelNote)
	}
}

func TestChangeStatus_TerminalStatesRejectEverything(t *testing.T) {
	targets := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusDelivered,
		domain.OrderStatusCanceled,
	}

	for _, terminal := range []domain.OrderStatus{domain.OrderStatusDelivered, domain.OrderStatusCanceled} {
		uc, repo, _ := newUseCase()
		order := createPendingOrder(t, uc)
		if _, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{OrderID: order.ID, Status: terminal}); err != nil {
			t.Fatalf("failed to reach terminal status %s: %v", terminal, err)
		}

		for _, target := range targets {
			_, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{OrderID: order.ID, Status: target})
			if err == nil {
				t.Errorf("expected %s -> %s to be rejected", terminal, target)
				continue
			}
			if !errors.Is(err, errors.CodeInvalidTransition) {
				t.Errorf("expected invalid transition error for %s -> %s, got %v", terminal, target, err)
			}

			stored, _ := repo.GetByID(context.Background(), order.ID)
			if stored.Status != terminal {
				t.Errorf("stored status mutated to %s after rejected transition", stored.Status)
			}
		}
	}
}

func TestChangeStatus_PendingToPendingRejected(t *testing.T) {
	uc, repo, _ := newUseCase()
	order := createPendingOrder(t, uc)

	_, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: order.ID,
		Status:  domain.OrderStatusPending,
	})

	if !errors.Is(err, errors.CodeInvalidTransition) {
		t.Errorf("expected invalid transition error, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), order.ID)
	if stored.Status != domain.OrderStatusPending {
		t.Errorf("expected stored status unchanged, got %s", stored.Status)
	}
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	uc, _, _ := newUseCase()
	order := createPendingOrder(t, uc)

	_, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: order.ID,
		Status:  domain.OrderStatus("SHIPPED"),
	})

	if !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
}

func TestChangeStatus_MissingParameters(t *testing.T) {
	uc, _, _ := newUseCase()

	if _, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{Status: domain.OrderStatusDelivered}); !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error for missing order id, got %v", err)
	}

	order := createPendingOrder(t, uc)
	if _, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{OrderID: order.ID}); !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error for missing status, got %v", err)
	}
}

func TestChangeStatus_OrderNotFound(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: 999,
		Status:  domain.OrderStatusDelivered,
	})

	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestChangeStatus_NotificationFailureDoesNotFailTransition(t *testing.T) {
	// Arrange
	uc, repo, dispatcher := newUseCase()
	order := createPendingOrder(t, uc)
	dispatcher.fail = true

	// Act
	output, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: order.ID,
		Status:  domain.OrderStatusDelivered,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected transition to succeed despite dispatch failure, got %v", err)
	}
	if output.NotificationSent {
		t.Error("expected NotificationSent=false when dispatch fails")
	}

	stored, _ := repo.GetByID(context.Background(), order.ID)
	if stored.Status != domain.OrderStatusDelivered {
		t.Errorf("expected stored status DELIVERED, got %s", stored.Status)
	}
}

func TestChangeStatus_DeliveredThenPendingScenario(t *testing.T) {
	uc, _, _ := newUseCase()
	order := createPendingOrder(t, uc)

	output, err := uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: order.ID,
		Status:  domain.OrderStatusDelivered,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.OldStatus != domain.OrderStatusPending || output.NewStatus != domain.OrderStatusDelivered {
		t.Errorf("unexpected transition result: %s -> %s", output.OldStatus, output.NewStatus)
	}

	_, err = uc.ChangeStatus(context.Background(), ChangeStatusInput{
		OrderID: order.ID,
		Status:  domain.OrderStatusPending,
	})
	if !errors.Is(err, errors.CodeInvalidTransition) {
		t.Errorf("expected INVALID_STATUS_TRANSITION, got %v", err)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.GetOrder(context.Background(), GetOrderInput{ID: 999})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}
