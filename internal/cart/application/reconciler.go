package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/cart/domain"
	"storefront/internal/cart/ports"
	"storefront/pkg/errors"
	"storefront/pkg/logger"
)

// Reconciler detects and removes cart items whose product no longer exists
type Reconciler struct {
	repo            ports.CartRepository
	catalog         ports.ProductCatalog
	sweepEmptyCarts bool
	log             *logger.Logger
}

// NewReconciler creates a new cart reconciler
func NewReconciler(repo ports.CartRepository, catalog ports.ProductCatalog, sweepEmptyCarts bool, log *logger.Logger) *Reconciler {
	return &Reconciler{
		repo:            repo,
		catalog:         catalog,
		sweepEmptyCarts: sweepEmptyCarts,
		log:             log,
	}
}

// Cleanup removes orphaned cart items. The bulk set-difference strategy runs
// first; if it errors the per-item strategy takes over and the bulk error is
// logged with the run id rather than propagated. Only a fallback failure is
// returned to the caller.
func (r *Reconciler) Cleanup(ctx context.Context) (*domain.ReconcileReport, error) {
	runID := uuid.New().String()

	report := &domain.ReconcileReport{
		Strategy: domain.StrategyBulk,
		RunID:    runID,
	}

	cleaned, err := r.cleanupBulk(ctx)
	if err != nil {
		// The bulk error is swallowed here on purpose; the run id ties this
		// log line to the fallback outcome.
		r.log.WithContext(ctx).Warn("bulk cleanup failed, falling back to per-item strategy",
			zap.Error(err),
			zap.String("run_id", runID),
		)

		report.Strategy = domain.StrategyPerItem
		report.FallbackUsed = true

		cleaned, err = r.cleanupPerItem(ctx)
		if err != nil {
			return nil, errors.NewInternal("cart cleanup failed", err)
		}
	}
	report.Cleaned = int(cleaned)

	if r.sweepEmptyCarts {
		removed, err := r.repo.DeleteEmptyCarts(ctx)
		if err != nil {
			r.log.WithContext(ctx).Warn("empty cart sweep failed",
				zap.Error(err),
				zap.String("run_id", runID),
			)
		} else {
			report.EmptyCartsRemoved = int(removed)
		}
	}

	r.log.WithContext(ctx).Info("cart reconciliation finished",
		zap.String("run_id", runID),
		zap.String("strategy", report.Strategy),
		zap.Bool("fallback_used", report.FallbackUsed),
		zap.Int("cleaned", report.Cleaned),
		zap.Int("empty_carts_removed", report.EmptyCartsRemoved),
	)

	return report, nil
}

// cleanupBulk deletes items outside the current product id set in one
// operation. Fast, but reads the id set once, so it can race with concurrent
// product changes; the staleness window is accepted.
func (r *Reconciler) cleanupBulk(ctx context.Context) (int64, error) {
	productIDs, err := r.catalog.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	return r.repo.DeleteItemsOutside(ctx, productIDs)
}

// cleanupPerItem checks each item's product individually and deletes the
// collected orphans by id. O(items) round trips, used as the safe fallback.
func (r *Reconciler) cleanupPerItem(ctx context.Context) (int64, error) {
	items, err := r.repo.ListItems(ctx)
	if err != nil {
		return 0, err
	}

	var orphans []uint
	for _, item := range items {
		exists, err := r.catalog.Exists(ctx, item.ProductID)
		if err != nil {
			return 0, err
		}
		if !exists {
			orphans = append(orphans, item.ID)
		}
	}

	if len(orphans) == 0 {
		return 0, nil
	}

	return r.repo.DeleteItemsByID(ctx, orphans)
}

// Health computes cart integrity statistics without mutating anything
func (r *Reconciler) Health(ctx context.Context) (*domain.HealthStats, error) {
	totalCarts, err := r.repo.CountCarts(ctx)
	if err != nil {
		return nil, errors.NewInternal("failed to count carts", err)
	}

	totalItems, err := r.repo.CountItems(ctx)
	if err != nil {
		return nil, errors.NewInternal("failed to count cart items", err)
	}

	emptyCarts, err := r.repo.CountEmptyCarts(ctx)
	if err != nil {
		return nil, errors.NewInternal("failed to count empty carts", err)
	}

	orphaned, err := r.countOrphans(ctx)
	if err != nil {
		return nil, errors.NewInternal("failed to count orphaned items", err)
	}

	return &domain.HealthStats{
		TotalCarts:       totalCarts,
		TotalCartItems:   totalItems,
		OrphanedItems:    orphaned,
		EmptyCarts:       emptyCarts,
		HealthPercentage: domain.Percentage(totalItems, orphaned),
	}, nil
}

func (r *Reconciler) countOrphans(ctx context.Context) (int64, error) {
	items, err := r.repo.ListItems(ctx)
	if err != nil {
		return 0, err
	}

	var orphaned int64
	for _, item := range items {
		exists, err := r.catalog.Exists(ctx, item.ProductID)
		if err != nil {
			return 0, err
		}
		if !exists {
			orphaned++
		}
	}

	return orphaned, nil
}
