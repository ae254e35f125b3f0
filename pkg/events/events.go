package events

import (
	"fmt"
	"time"
)

// Exchange names
const (
	ExchangeOrders   = "orders.events"
	ExchangeCatalog  = "catalog.events"
	ExchangeCustomer = "customers.events"
)

// Routing keys
const (
	RoutingKeyOrderCreated    = "order.created"
	RoutingKeyOrderDelivered  = "order.delivered"
	RoutingKeyOrderCanceled   = "order.canceled"
	RoutingKeyProductDeleted  = "product.deleted"
	RoutingKeyCustomerCreated = "customer.created"
)

// OrderCreatedEvent is published when an order is created
type OrderCreatedEvent struct {
	Version   string              `json:"version"`
	EventType string              `json:"event_type"`
	Timestamp time.Time           `json:"timestamp"`
	TraceID   string              `json:"trace_id"`
	Payload   OrderCreatedPayload `json:"payload"`
}

// OrderCreatedPayload contains order data
type OrderCreatedPayload struct {
	ID         uint      `json:"id"`
	CustomerID uint      `json:"customer_id"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(id, customerID uint, total float64, status string, createdAt time.Time, traceID string) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		Version:   "1.0",
		EventType: "order.created",
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: OrderCreatedPayload{
			ID:         id,
			CustomerID: customerID,
			Total:      total,
			Status:     status,
			CreatedAt:  createdAt,
		},
	}
}

// OrderStatusChangedEvent carries the customer notification for a status change
type OrderStatusChangedEvent struct {
	Version   string                    `json:"version"`
	EventType string                    `json:"event_type"`
	Timestamp time.Time                 `json:"timestamp"`
	TraceID   string                    `json:"trace_id"`
	Payload   OrderStatusChangedPayload `json:"payload"`
}

// OrderStatusChangedPayload contains the transition and the rendered message
type OrderStatusChangedPayload struct {
	OrderID    uint      `json:"order_id"`
	CustomerID uint      `json:"customer_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	Message    string    `json:"message"`
	Note       string    `json:"note,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(orderID, customerID uint, oldStatus, newStatus, message, note string, updatedAt time.Time, traceID string) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		Version:   "1.0",
		EventType: "order." + newStatus,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: OrderStatusChangedPayload{
			OrderID:    orderID,
			CustomerID: customerID,
			OldStatus:  oldStatus,
			NewStatus:  newStatus,
			Message:    message,
			Note:       note,
			UpdatedAt:  updatedAt,
		},
	}
}

// DeliveredMessage renders the customer-facing text for a delivered order
func DeliveredMessage(orderID uint) string {
	return fmt.Sprintf("Your order #%d has been delivered. Thank you for shopping with us!", orderID)
}

// CanceledMessage renders the customer-facing text for a canceled order
func CanceledMessage(orderID uint, note string) string {
	if note != "" {
		return fmt.Sprintf("Your order #%d has been canceled: %s", orderID, note)
	}
	return fmt.Sprintf("Your order #%d has been canceled.", orderID)
}

// CustomerCreatedEvent is published when a customer registers
type CustomerCreatedEvent struct {
	Version   string                 `json:"version"`
	EventType string                 `json:"event_type"`
	Timestamp time.Time              `json:"timestamp"`
	TraceID   string                 `json:"trace_id"`
	Payload   CustomerCreatedPayload `json:"payload"`
}

// CustomerCreatedPayload contains customer data
type CustomerCreatedPayload struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(id uint, name, phone string, createdAt time.Time, traceID string) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		Version:   "1.0",
		EventType: "customer.created",
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload: CustomerCreatedPayload{
			ID:        id,
			Name:      name,
			Phone:     phone,
			CreatedAt: createdAt,
		},
	}
}

// ProductDeletedEvent is consumed when the catalog removes a product
type ProductDeletedEvent struct {
	Version   string                `json:"version"`
	EventType string                `json:"event_type"`
	Timestamp time.Time             `json:"timestamp"`
	TraceID   string                `json:"trace_id"`
	Payload   ProductDeletedPayload `json:"payload"`
}

// ProductDeletedPayload contains the removed product id
type ProductDeletedPayload struct {
	ProductID uint `json:"product_id"`
}
