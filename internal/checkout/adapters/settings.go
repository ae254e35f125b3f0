package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/internal/checkout/domain"
	apperrors "storefront/pkg/errors"
)

// StoreSettingsModel is the GORM model for the store settings row
type StoreSettingsModel struct {
	ID              uint      `gorm:"primaryKey"`
	RequireOTP      bool      `gorm:"not null;default:true"`
	RequireLocation bool      `gorm:"not null;default:true"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (StoreSettingsModel) TableName() string {
	return "store_settings"
}

// PostgresSettingsProvider implements SettingsProvider using PostgreSQL
type PostgresSettingsProvider struct {
	db       *gorm.DB
	defaults domain.Settings
}

// NewPostgresSettingsProvider creates a settings provider. The defaults apply
// when no settings row has been created yet.
func NewPostgresSettingsProvider(db *gorm.DB, defaults domain.Settings) *PostgresSettingsProvider {
	return &PostgresSettingsProvider{db: db, defaults: defaults}
}

// Migrate runs auto-migration for the settings model
func (p *PostgresSettingsProvider) Migrate() error {
	return p.db.AutoMigrate(&StoreSettingsModel{})
}

// Settings returns the current checkout settings
func (p *PostgresSettingsProvider) Settings(ctx context.Context) (domain.Settings, error) {
	var model StoreSettingsModel

	result := p.db.WithContext(ctx).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return p.defaults, nil
		}
		return domain.Settings{}, apperrors.NewInternal("failed to load store settings", result.Error)
	}

	return domain.Settings{
		RequireOTP:      model.RequireOTP,
		RequireLocation: model.RequireLocation,
	}, nil
}
