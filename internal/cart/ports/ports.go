package ports

import (
	"context"

	"storefront/internal/cart/domain"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// ListItems retrieves all cart items
	ListItems(ctx context.Context) ([]*domain.CartItem, error)

	// DeleteItemsOutside deletes, in one bulk operation, every cart item whose
	// product id is not in the given set; returns the number deleted
	DeleteItemsOutside(ctx context.Context, productIDs []uint) (int64, error)

	// DeleteItemsByID deletes cart items by explicit id list; returns the
	// number deleted
	DeleteItemsByID(ctx context.Context, ids []uint) (int64, error)

	// DeleteEmptyCarts deletes carts with zero items; returns the number deleted
	DeleteEmptyCarts(ctx context.Context) (int64, error)

	// CountCarts returns the total number of carts
	CountCarts(ctx context.Context) (int64, error)

	// CountItems returns the total number of cart items
	CountItems(ctx context.Context) (int64, error)

	// CountEmptyCarts returns the number of carts with zero items
	CountEmptyCarts(ctx context.Context) (int64, error)
}

// ProductCatalog defines the interface for product existence checks
type ProductCatalog interface {
	// ListIDs returns all existing product ids
	ListIDs(ctx context.Context) ([]uint, error)

	// Exists reports whether a product with the given id exists
	Exists(ctx context.Context, id uint) (bool, error)
}
