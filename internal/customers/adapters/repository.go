package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/internal/customers/domain"
	apperrors "storefront/pkg/errors"
)

// CustomerModel is the GORM model for customers (persistence layer)
type CustomerModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Phone     string    `gorm:"size:20;uniqueIndex;not null"`
	Verified  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL
type PostgresCustomerRepository struct {
	db *gorm.DB
}

// NewPostgresCustomerRepository creates a new PostgreSQL customer repository
func NewPostgresCustomerRepository(db *gorm.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

// Migrate runs auto-migration for the customer model
func (r *PostgresCustomerRepository) Migrate() error {
	return r.db.AutoMigrate(&CustomerModel{})
}

// Create creates a new customer
func (r *PostgresCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	model := toModel(customer)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	customer.ID = model.ID
	customer.CreatedAt = model.CreatedAt
	customer.UpdatedAt = model.UpdatedAt

	return nil
}

// GetByID retrieves a customer by ID
func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	var model CustomerModel

	result := r.db.WithContext(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewCustomerNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get customer", result.Error)
	}

	return toDomain(&model), nil
}

// GetByPhone retrieves a customer by phone number
func (r *PostgresCustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var model CustomerModel

	result := r.db.WithContext(ctx).Where("phone = ?", phone).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("customer", phone)
		}
		return nil, apperrors.NewInternal("failed to get customer by phone", result.Error)
	}

	return toDomain(&model), nil
}

// Update updates an existing customer
func (r *PostgresCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	model := toModel(customer)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return apperrors.NewInternal("failed to update customer", result.Error)
	}

	customer.UpdatedAt = model.UpdatedAt
	return nil
}

// toModel converts a domain entity to a GORM model
func toModel(customer *domain.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Verified:  customer.Verified,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// toDomain converts a GORM model to a domain entity
func toDomain(model *CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Verified:  model.Verified,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
