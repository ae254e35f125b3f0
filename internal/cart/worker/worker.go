package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront/internal/cart/application"
	"storefront/pkg/logger"
)

// ReconciliationWorker runs the cart reconciler on a fixed interval
type ReconciliationWorker struct {
	reconciler *application.Reconciler
	interval   time.Duration
	log        *logger.Logger
}

// NewReconciliationWorker creates a new reconciliation worker
func NewReconciliationWorker(reconciler *application.Reconciler, interval time.Duration, log *logger.Logger) *ReconciliationWorker {
	return &ReconciliationWorker{
		reconciler: reconciler,
		interval:   interval,
		log:        log,
	}
}

// Run blocks until the context is cancelled, reconciling once per interval.
// A failed run is logged and the next tick retries from scratch.
func (w *ReconciliationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("cart reconciliation worker started",
		zap.Duration("interval", w.interval),
	)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("cart reconciliation worker stopped")
			return
		case <-ticker.C:
			if _, err := w.reconciler.Cleanup(ctx); err != nil {
				w.log.WithContext(ctx).Error("scheduled cart reconciliation failed",
					zap.Error(err),
				)
			}
		}
	}
}
