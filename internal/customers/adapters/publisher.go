package adapters

import (
	"context"

	"storefront/internal/customers/domain"
	"storefront/pkg/events"
	"storefront/pkg/logger"
	"storefront/pkg/rabbitmq"
)

// RabbitMQPublisher implements EventPublisher using RabbitMQ
type RabbitMQPublisher struct {
	publisher *rabbitmq.Publisher
	log       *logger.Logger
}

// NewRabbitMQPublisher creates a new RabbitMQ event publisher
func NewRabbitMQPublisher(publisher *rabbitmq.Publisher, log *logger.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		publisher: publisher,
		log:       log,
	}
}

// PublishCustomerCreated publishes a customer created event
func (p *RabbitMQPublisher) PublishCustomerCreated(ctx context.Context, customer *domain.Customer) error {
	traceID := logger.GetTraceID(ctx)

	event := events.NewCustomerCreatedEvent(
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.CreatedAt,
		traceID,
	)

	return p.publisher.Publish(ctx, events.RoutingKeyCustomerCreated, event)
}
