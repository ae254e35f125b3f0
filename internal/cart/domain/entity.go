package domain

// Cart represents a customer's cart
type Cart struct {
	ID         uint
	CustomerID uint
}

// CartItem references a cart and a product. Every item must reference an
// existing product; an item whose product is gone is an orphan and a
// data-integrity defect.
type CartItem struct {
	ID        uint
	CartID    uint
	ProductID uint
	Quantity  int
}

// Reconciliation strategies
const (
	StrategyBulk    = "bulk"
	StrategyPerItem = "per_item"
)

// ReconcileReport describes one cleanup run
type ReconcileReport struct {
	Cleaned           int    `json:"cleaned"`
	Strategy          string `json:"strategy"`
	FallbackUsed      bool   `json:"fallback_used"`
	EmptyCartsRemoved int    `json:"empty_carts_removed"`
	RunID             string `json:"run_id"`
}

// HealthStats is the read-only cart integrity report
type HealthStats struct {
	TotalCarts       int64   `json:"total_carts"`
	TotalCartItems   int64   `json:"total_cart_items"`
	OrphanedItems    int64   `json:"orphaned_items"`
	EmptyCarts       int64   `json:"empty_carts"`
	HealthPercentage float64 `json:"health_percentage"`
}

// Percentage computes (total-orphaned)/total*100, defined as 100 for an
// empty item set.
func Percentage(total, orphaned int64) float64 {
	if total == 0 {
		return 100
	}
	return float64(total-orphaned) / float64(total) * 100
}
