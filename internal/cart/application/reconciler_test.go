package application

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/cart/domain"
	"storefront/pkg/logger"
)

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	items    map[uint]*domain.CartItem
	carts    map[uint]*domain.Cart
	failBulk bool
	failList bool
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[uint]*domain.CartItem),
		carts: make(map[uint]*domain.Cart),
	}
}

func (m *MockCartRepository) addItem(id, cartID, productID uint) {
	m.items[id] = &domain.CartItem{ID: id, CartID: cartID, ProductID: productID, Quantity: 1}
	if _, ok := m.carts[cartID]; !ok {
		m.carts[cartID] = &domain.Cart{ID: cartID, CustomerID: cartID}
	}
}

func (m *MockCartRepository) ListItems(ctx context.Context) ([]*domain.CartItem, error) {
	if m.failList {
		return nil, fmt.Errorf("connection reset")
	}
	var items []*domain.CartItem
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *MockCartRepository) DeleteItemsOutside(ctx context.Context, productIDs []uint) (int64, error) {
	if m.failBulk {
		return 0, fmt.Errorf("bulk delete failed")
	}
	keep := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		keep[id] = true
	}
	var deleted int64
	for id, item := range m.items {
		if !keep[item.ProductID] {
			delete(m.items, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockCartRepository) DeleteItemsByID(ctx context.Context, ids []uint) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := m.items[id]; ok {
			delete(m.items, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockCartRepository) DeleteEmptyCarts(ctx context.Context) (int64, error) {
	occupied := make(map[uint]bool)
	for _, item := range m.items {
		occupied[item.CartID] = true
	}
	var deleted int64
	for id := range m.carts {
		if !occupied[id] {
			delete(m.carts, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockCartRepository) CountCarts(ctx context.Context) (int64, error) {
	return int64(len(m.carts)), nil
}

func (m *MockCartRepository) CountItems(ctx context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *MockCartRepository) CountEmptyCarts(ctx context.Context) (int64, error) {
	occupied := make(map[uint]bool)
	for _, item := range m.items {
		occupied[item.CartID] = true
	}
	var empty int64
	for id := range m.carts {
		if !occupied[id] {
			empty++
		}
	}
	return empty, nil
}

// MockProductCatalog is a mock implementation of ProductCatalog
type MockProductCatalog struct {
	products map[uint]bool
}

func NewMockProductCatalog(ids ...uint) *MockProductCatalog {
	products := make(map[uint]bool, len(ids))
	for _, id := range ids {
		products[id] = true
	}
	return &MockProductCatalog{products: products}
}

func (m *MockProductCatalog) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	for id := range m.products {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MockProductCatalog) Exists(ctx context.Context, id uint) (bool, error) {
	return m.products[id], nil
}

// seedFixture builds N=5 items where exactly k=2 reference missing products
func seedFixture(repo *MockCartRepository) {
	repo.addItem(1, 10, 100)
	repo.addItem(2, 10, 101)
	repo.addItem(3, 11, 999) // orphan
	repo.addItem(4, 12, 102)
	repo.addItem(5, 12, 998) // orphan
}

func newReconciler(repo *MockCartRepository, catalog *MockProductCatalog) *Reconciler {
	log := logger.New("test", "debug")
	return NewReconciler(repo, catalog, true, log)
}

func TestCleanup_BulkStrategy(t *testing.T) {
	// Arrange
	repo := NewMockCartRepository()
	seedFixture(repo)
	catalog := NewMockProductCatalog(100, 101, 102)
	reconciler := newReconciler(repo, catalog)

	// Act
	report, err := reconciler.Cleanup(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Strategy != domain.StrategyBulk {
		t.Errorf("expected bulk strategy, got %s", report.Strategy)
	}
	if report.FallbackUsed {
		t.Error("expected no fallback")
	}
	if report.Cleaned != 2 {
		t.Errorf("expected 2 items cleaned, got %d", report.Cleaned)
	}
	if len(repo.items) != 3 {
		t.Errorf("expected 3 items left, got %d", len(repo.items))
	}
}

func TestCleanup_PerItemFallbackOnBulkError(t *testing.T) {
	// Arrange
	repo := NewMockCartRepository()
	seedFixture(repo)
	repo.failBulk = true
	catalog := NewMockProductCatalog(100, 101, 102)
	reconciler := newReconciler(repo, catalog)

	// Act
	report, err := reconciler.Cleanup(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if report.Strategy != domain.StrategyPerItem {
		t.Errorf("expected per_item strategy, got %s", report.Strategy)
	}
	if !report.FallbackUsed {
		t.Error("expected fallback_used=true")
	}
	if report.Cleaned != 2 {
		t.Errorf("expected 2 items cleaned, got %d", report.Cleaned)
	}
	if len(repo.items) != 3 {
		t.Errorf("expected 3 items left, got %d", len(repo.items))
	}
}

func TestCleanup_BothStrategiesAgree(t *testing.T) {
	bulkRepo := NewMockCartRepository()
	seedFixture(bulkRepo)
	perItemRepo := NewMockCartRepository()
	seedFixture(perItemRepo)
	perItemRepo.failBulk = true

	catalog := NewMockProductCatalog(100, 101, 102)

	bulkReport, err := newReconciler(bulkRepo, catalog).Cleanup(context.Background())
	if err != nil {
		t.Fatalf("bulk run failed: %v", err)
	}
	perItemReport, err := newReconciler(perItemRepo, catalog).Cleanup(context.Background())
	if err != nil {
		t.Fatalf("per-item run failed: %v", err)
	}

	if bulkReport.Cleaned != perItemReport.Cleaned {
		t.Errorf("strategies disagree: bulk cleaned %d, per-item cleaned %d", bulkReport.Cleaned, perItemReport.Cleaned)
	}

	for id := range bulkRepo.items {
		if _, ok := perItemRepo.items[id]; !ok {
			t.Errorf("item %d survived bulk but not per-item", id)
		}
	}
}

func TestCleanup_FallbackFailureIsStructured(t *testing.T) {
	repo := NewMockCartRepository()
	seedFixture(repo)
	repo.failBulk = true
	repo.failList = true
	catalog := NewMockProductCatalog(100, 101, 102)
	reconciler := newReconciler(repo, catalog)

	_, err := reconciler.Cleanup(context.Background())

	if err == nil {
		t.Fatal("expected error when both strategies fail")
	}
}

func TestCleanup_SweepsEmptyCarts(t *testing.T) {
	repo := NewMockCartRepository()
	// Cart 11 holds only an orphan, so cleanup leaves it empty
	repo.addItem(1, 10, 100)
	repo.addItem(2, 11, 999)
	catalog := NewMockProductCatalog(100)
	reconciler := newReconciler(repo, catalog)

	report, err := reconciler.Cleanup(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Cleaned != 1 {
		t.Errorf("expected 1 item cleaned, got %d", report.Cleaned)
	}
	if report.EmptyCartsRemoved != 1 {
		t.Errorf("expected 1 empty cart removed, got %d", report.EmptyCartsRemoved)
	}
}

func TestHealth_ReportsOrphansAndPercentage(t *testing.T) {
	repo := NewMockCartRepository()
	seedFixture(repo)
	catalog := NewMockProductCatalog(100, 101, 102)
	reconciler := newReconciler(repo, catalog)

	stats, err := reconciler.Health(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.TotalCartItems != 5 {
		t.Errorf("expected 5 items, got %d", stats.TotalCartItems)
	}
	if stats.OrphanedItems != 2 {
		t.Errorf("expected 2 orphans, got %d", stats.OrphanedItems)
	}
	if stats.HealthPercentage != 60 {
		t.Errorf("expected 60%%, got %v", stats.HealthPercentage)
	}

	// Health is read-only
	if len(repo.items) != 5 {
		t.Errorf("expected items untouched, got %d", len(repo.items))
	}
}

func TestHealth_EmptyItemSetIsHundredPercent(t *testing.T) {
	repo := NewMockCartRepository()
	catalog := NewMockProductCatalog()
	reconciler := newReconciler(repo, catalog)

	stats, err := reconciler.Health(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.HealthPercentage != 100 {
		t.Errorf("expected 100%% with zero items, got %v", stats.HealthPercentage)
	}
}
