package adapters

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"storefront/internal/cart/application"
	"storefront/pkg/events"
	"storefront/pkg/logger"
	"storefront/pkg/rabbitmq"
)

// ProductDeletedConsumer triggers a reconciliation run whenever the catalog
// announces a removed product, so orphans are cleaned close to when they
// appear instead of waiting for the next scheduled sweep.
type ProductDeletedConsumer struct {
	consumer   *rabbitmq.Consumer
	reconciler *application.Reconciler
	log        *logger.Logger
}

// NewProductDeletedConsumer creates a new consumer for ProductDeleted events
func NewProductDeletedConsumer(conn *rabbitmq.Connection, reconciler *application.Reconciler, log *logger.Logger) (*ProductDeletedConsumer, error) {
	consumer, err := rabbitmq.NewConsumer(
		conn,
		"cart.product-deleted", // queue name
		events.ExchangeCatalog, // exchange
		[]string{events.RoutingKeyProductDeleted},
		log,
	)
	if err != nil {
		return nil, err
	}

	return &ProductDeletedConsumer{
		consumer:   consumer,
		reconciler: reconciler,
		log:        log,
	}, nil
}

// Start starts consuming ProductDeleted events
func (c *ProductDeletedConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

func (c *ProductDeletedConsumer) handleMessage(ctx context.Context, body []byte) error {
	var event events.ProductDeletedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.log.WithContext(ctx).Error("failed to unmarshal ProductDeletedEvent",
			zap.Error(err),
		)
		return err
	}

	c.log.WithContext(ctx).Info("received ProductDeleted event",
		zap.Uint("product_id", event.Payload.ProductID),
		zap.String("trace_id", event.TraceID),
	)

	report, err := c.reconciler.Cleanup(ctx)
	if err != nil {
		return err
	}

	c.log.WithContext(ctx).Info("reconciliation after product deletion",
		zap.Uint("product_id", event.Payload.ProductID),
		zap.Int("cleaned", report.Cleaned),
		zap.String("run_id", report.RunID),
	)

	return nil
}
