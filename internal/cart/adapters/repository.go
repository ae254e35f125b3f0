package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/internal/cart/domain"
	apperrors "storefront/pkg/errors"
)

// CartModel is the GORM model for carts (persistence layer)
type CartModel struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"index;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM model for cart items
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	CartID    uint      `gorm:"index;not null"`
	ProductID uint      `gorm:"index;not null"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ProductModel is the GORM model for products. The catalog itself is managed
// elsewhere; this service only reads product ids for integrity checks.
type ProductModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Price     float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// PostgresCartRepository implements CartRepository using PostgreSQL
type PostgresCartRepository struct {
	db *gorm.DB
}

// NewPostgresCartRepository creates a new PostgreSQL cart repository
func NewPostgresCartRepository(db *gorm.DB) *PostgresCartRepository {
	return &PostgresCartRepository{db: db}
}

// Migrate runs auto-migration for the cart models
func (r *PostgresCartRepository) Migrate() error {
	return r.db.AutoMigrate(&CartModel{}, &CartItemModel{})
}

// ListItems retrieves all cart items
func (r *PostgresCartRepository) ListItems(ctx context.Context) ([]*domain.CartItem, error) {
	var models []CartItemModel

	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to list cart items", result.Error)
	}

	items := make([]*domain.CartItem, len(models))
	for i, model := range models {
		items[i] = &domain.CartItem{
			ID:        model.ID,
			CartID:    model.CartID,
			ProductID: model.ProductID,
			Quantity:  model.Quantity,
		}
	}

	return items, nil
}

// DeleteItemsOutside deletes every cart item whose product id is not in the
// given set, in one bulk operation. An empty set means no products exist, so
// every item is an orphan.
func (r *PostgresCartRepository) DeleteItemsOutside(ctx context.Context, productIDs []uint) (int64, error) {
	query := r.db.WithContext(ctx)
	if len(productIDs) > 0 {
		query = query.Where("product_id NOT IN ?", productIDs)
	} else {
		query = query.Where("1 = 1")
	}

	result := query.Delete(&CartItemModel{})
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to bulk delete orphaned items", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteItemsByID deletes cart items by explicit id list
func (r *PostgresCartRepository) DeleteItemsByID(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Delete(&CartItemModel{}, ids)
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to delete cart items", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteEmptyCarts deletes carts with zero items
func (r *PostgresCartRepository) DeleteEmptyCarts(ctx context.Context) (int64, error) {
	subquery := r.db.Model(&CartItemModel{}).Select("cart_id")

	result := r.db.WithContext(ctx).Where("id NOT IN (?)", subquery).Delete(&CartModel{})
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to delete empty carts", result.Error)
	}

	return result.RowsAffected, nil
}

// CountCarts returns the total number of carts
func (r *PostgresCartRepository) CountCarts(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&CartModel{}).Count(&count)
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to count carts", result.Error)
	}
	return count, nil
}

// CountItems returns the total number of cart items
func (r *PostgresCartRepository) CountItems(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&CartItemModel{}).Count(&count)
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to count cart items", result.Error)
	}
	return count, nil
}

// CountEmptyCarts returns the number of carts with zero items
func (r *PostgresCartRepository) CountEmptyCarts(ctx context.Context) (int64, error) {
	subquery := r.db.Model(&CartItemModel{}).Select("cart_id")

	var count int64
	result := r.db.WithContext(ctx).Model(&CartModel{}).Where("id NOT IN (?)", subquery).Count(&count)
	if result.Error != nil {
		return 0, apperrors.NewInternal("failed to count empty carts", result.Error)
	}
	return count, nil
}

// PostgresProductCatalog implements ProductCatalog using PostgreSQL
type PostgresProductCatalog struct {
	db *gorm.DB
}

// NewPostgresProductCatalog creates a new PostgreSQL product catalog
func NewPostgresProductCatalog(db *gorm.DB) *PostgresProductCatalog {
	return &PostgresProductCatalog{db: db}
}

// Migrate runs auto-migration for the product model
func (c *PostgresProductCatalog) Migrate() error {
	return c.db.AutoMigrate(&ProductModel{})
}

// ListIDs returns all existing product ids
func (c *PostgresProductCatalog) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint

	result := c.db.WithContext(ctx).Model(&ProductModel{}).Pluck("id", &ids)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to list product ids", result.Error)
	}

	return ids, nil
}

// Exists reports whether a product with the given id exists
func (c *PostgresProductCatalog) Exists(ctx context.Context, id uint) (bool, error) {
	var model ProductModel

	result := c.db.WithContext(ctx).Select("id").First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.NewInternal("failed to check product existence", result.Error)
	}

	return true, nil
}
