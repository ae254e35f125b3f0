package adapters

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront/internal/checkout/domain"
	"storefront/internal/checkout/ports"
	"storefront/pkg/logger"
)

const settingsCacheKey = "checkout:settings"

// CachedSettingsProvider is a read-through Redis cache over another provider,
// so checkout renders do not hit the database on every request. Cache errors
// fall through to the inner provider.
type CachedSettingsProvider struct {
	inner  ports.SettingsProvider
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCachedSettingsProvider creates a cached settings provider
func NewCachedSettingsProvider(inner ports.SettingsProvider, client *redis.Client, ttl time.Duration, log *logger.Logger) *CachedSettingsProvider {
	return &CachedSettingsProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Settings returns the cached settings, loading from the inner provider on miss
func (p *CachedSettingsProvider) Settings(ctx context.Context) (domain.Settings, error) {
	cached, err := p.client.Get(ctx, settingsCacheKey).Bytes()
	if err == nil {
		var settings domain.Settings
		if err := json.Unmarshal(cached, &settings); err == nil {
			return settings, nil
		}
	} else if err != redis.Nil {
		p.log.WithContext(ctx).Warn("settings cache read failed",
			zap.Error(err),
		)
	}

	settings, err := p.inner.Settings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	if data, err := json.Marshal(settings); err == nil {
		if err := p.client.Set(ctx, settingsCacheKey, data, p.ttl).Err(); err != nil {
			p.log.WithContext(ctx).Warn("settings cache write failed",
				zap.Error(err),
			)
		}
	}

	return settings, nil
}

// Invalidate drops the cached settings entry
func (p *CachedSettingsProvider) Invalidate(ctx context.Context) error {
	return p.client.Del(ctx, settingsCacheKey).Err()
}
