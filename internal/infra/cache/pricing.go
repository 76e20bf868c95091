package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
)

const (
	resultHit    = "hit"
	resultMiss   = "miss"
	resultBypass = "bypass"
)

// PricingCache read-through кэш таблиц цен барберов в Redis.
// Без клиента Redis (или при ttl <= 0) все запросы уходят в source.
type PricingCache struct {
	source  PricingSource
	redis   *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  Logger
}

// NewPricingCache создаёт кэш; redisClient и m могут быть nil
func NewPricingCache(source PricingSource, redisClient *redis.Client, ttl time.Duration, m *metrics.Metrics, logger Logger) *PricingCache {
	return &PricingCache{
		source:  source,
		redis:   redisClient,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func pricingKey(barberID int64) string {
	return fmt.Sprintf("pricing:barber:%d", barberID)
}

// GetByBarberID возвращает таблицу цен барбера, по возможности из кэша
func (c *PricingCache) GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error) {
	if !c.enabled() {
		c.observe(resultBypass)
		return c.source.GetByBarberID(ctx, barberID)
	}

	key := pricingKey(barberID)

	var cached []*domain.BarberServicePricing
	if c.readCache(ctx, key, &cached) {
		c.observe(resultHit)
		return cached, nil
	}
	c.observe(resultMiss)

	rows, err := c.source.GetByBarberID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	c.writeCache(ctx, key, rows)
	return rows, nil
}

// Invalidate сбрасывает кэш барбера после изменения цен
func (c *PricingCache) Invalidate(ctx context.Context, barberID int64) error {
	if !c.enabled() {
		return nil
	}
	if err := c.redis.Del(ctx, pricingKey(barberID)).Err(); err != nil {
		return fmt.Errorf("pricing cache: invalidate barber %d: %w", barberID, err)
	}
	return nil
}

func (c *PricingCache) enabled() bool {
	return c.redis != nil && c.ttl > 0
}

func (c *PricingCache) readCache(ctx context.Context, key string, out any) bool {
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("PricingCache: read %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *PricingCache) writeCache(ctx context.Context, key string, val any) {
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("PricingCache: write %s: %v", key, err)
	}
}

func (c *PricingCache) observe(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.PricingCacheRequests.WithLabelValues(result).Inc()
}
