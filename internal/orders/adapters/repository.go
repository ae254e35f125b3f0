package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/internal/orders/domain"
	apperrors "storefront/pkg/errors"
)

// OrderModel is the GORM model for orders (persistence layer)
type OrderModel struct {
	ID         uint               `gorm:"primaryKey"`
	CustomerID uint               `gorm:"index;not null"`
	Total      float64            `gorm:"not null"`
	Status     domain.OrderStatus `gorm:"size:20;not null;default:'PENDING'"`
	CancelNote string             `gorm:"size:500"`
	CreatedAt  time.Time          `gorm:"autoCreateTime"`
	UpdatedAt  time.Time          `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *gorm.DB
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(db *gorm.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Migrate runs auto-migration for the order model
func (r *PostgresOrderRepository) Migrate() error {
	return r.db.AutoMigrate(&OrderModel{})
}

// Create creates a new order
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	model := toModel(order)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	// Update domain entity with generated ID
	order.ID = model.ID
	order.CreatedAt = model.CreatedAt
	order.UpdatedAt = model.UpdatedAt

	return nil
}

// GetByID retrieves an order by ID
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var model OrderModel

	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewOrderNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get order", result.Error)
	}

	return toDomain(&model), nil
}

// UpdateStatus persists a status change in a single update
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, order *domain.Order) error {
	result := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":      order.Status,
			"cancel_note": order.CancelNote,
			"updated_at":  order.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.NewInternal("failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewOrderNotFound(order.ID)
	}
	return nil
}

// GetByCustomerID retrieves orders for a customer
func (r *PostgresOrderRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]*domain.Order, error) {
	var models []OrderModel

	result := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to get orders by customer", result.Error)
	}

	orders := make([]*domain.Order, len(models))
	for i, model := range models {
		orders[i] = toDomain(&model)
	}

	return orders, nil
}

// toModel converts a domain entity to a GORM model
func toModel(order *domain.Order) *OrderModel {
	return &OrderModel{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		Status:     order.Status,
		CancelNote: order.CancelNote,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// toDomain converts a GORM model to a domain entity
func toDomain(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		Total:      model.Total,
		Status:     model.Status,
		CancelNote: model.CancelNote,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
