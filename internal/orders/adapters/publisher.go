package adapters

import (
	"context"

	"storefront/internal/orders/domain"
	"storefront/pkg/events"
	"storefront/pkg/logger"
	"storefront/pkg/rabbitmq"
)

// RabbitMQDispatcher implements NotificationDispatcher using RabbitMQ
type RabbitMQDispatcher struct {
	publisher *rabbitmq.Publisher
	log       *logger.Logger
}

// NewRabbitMQDispatcher creates a new RabbitMQ notification dispatcher
func NewRabbitMQDispatcher(publisher *rabbitmq.Publisher, log *logger.Logger) *RabbitMQDispatcher {
	return &RabbitMQDispatcher{
		publisher: publisher,
		log:       log,
	}
}

// DispatchOrderCreated publishes an order created event
func (d *RabbitMQDispatcher) DispatchOrderCreated(ctx context.Context, order *domain.Order) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewOrderCreatedEvent(
		order.ID,
		order.CustomerID,
		order.Total,
		string(order.Status),
		order.CreatedAt,
		traceID,
	)

	return d.publisher.Publish(ctx, events.RoutingKeyOrderCreated, event)
}

// DispatchStatusChanged publishes a status notification. Only DELIVERED and
// CANCELED carry a customer-facing message template; any other target status
// is announced without one.
func (d *RabbitMQDispatcher) DispatchStatusChanged(ctx context.Context, order *domain.Order, oldStatus domain.OrderStatus) error {
	traceID := logger.GetTraceID(ctx)

	var routingKey, message string
	switch order.Status {
	case domain.OrderStatusDelivered:
		routingKey = events.RoutingKeyOrderDelivered
		message = events.DeliveredMessage(order.ID)
	case domain.OrderStatusCanceled:
		routingKey = events.RoutingKeyOrderCanceled
		message = events.CanceledMessage(order.ID, order.CancelNote)
	default:
		// Unreachable under the current transition table
		routingKey = "order." + string(order.Status)
	}

	event := events.NewOrderStatusChangedEvent(
		order.ID,
		order.CustomerID,
		string(oldStatus),
		string(order.Status),
		message,
		order.CancelNote,
		order.UpdatedAt,
		traceID,
	)

	return d.publisher.Publish(ctx, routingKey, event)
}
