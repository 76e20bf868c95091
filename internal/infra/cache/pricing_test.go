package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
)

type countingSource struct {
	calls int
	rows  []*domain.BarberServicePricing
	err   error
}

func (s *countingSource) GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error) {
	s.calls++
	return s.rows, s.err
}

func newTestCache(t *testing.T, source PricingSource) (*PricingCache, *miniredis.Miniredis, *metrics.Metrics) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	return NewPricingCache(source, client, time.Minute, m, nil), mr, m
}

func TestPricingCache_ReadThrough(t *testing.T) {
	source := &countingSource{rows: []*domain.BarberServicePricing{
		{ID: 1, BarberID: 3, ServiceID: 5, TimePeriod: domain.PeriodEvening, Price: 40},
	}}
	c, mr, m := newTestCache(t, source)
	ctx := context.Background()

	first, err := c.GetByBarberID(ctx, 3)
	require.NoError(t, err)
	second, err := c.GetByBarberID(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("pricing:barber:3"))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PricingCacheRequests.WithLabelValues(resultHit)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PricingCacheRequests.WithLabelValues(resultMiss)))
}

func TestPricingCache_TTL(t *testing.T) {
	source := &countingSource{}
	c, mr, _ := newTestCache(t, source)
	ctx := context.Background()

	_, err := c.GetByBarberID(ctx, 1)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = c.GetByBarberID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestPricingCache_Invalidate(t *testing.T) {
	source := &countingSource{}
	c, mr, _ := newTestCache(t, source)
	ctx := context.Background()

	_, err := c.GetByBarberID(ctx, 9)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, 9))
	assert.False(t, mr.Exists("pricing:barber:9"))

	_, err = c.GetByBarberID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestPricingCache_CorruptEntryFallsBackToSource(t *testing.T) {
	source := &countingSource{}
	c, mr, _ := newTestCache(t, source)

	require.NoError(t, mr.Set("pricing:barber:2", "{not json"))

	_, err := c.GetByBarberID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
}

func TestPricingCache_SourceErrorIsNotCached(t *testing.T) {
	source := &countingSource{err: errors.New("db down")}
	c, mr, _ := newTestCache(t, source)

	_, err := c.GetByBarberID(context.Background(), 4)
	assert.Error(t, err)
	assert.False(t, mr.Exists("pricing:barber:4"))
}

func TestPricingCache_DisabledWithoutRedis(t *testing.T) {
	source := &countingSource{}
	c := NewPricingCache(source, nil, time.Minute, nil, nil)
	ctx := context.Background()

	_, _ = c.GetByBarberID(ctx, 1)
	_, _ = c.GetByBarberID(ctx, 1)

	assert.Equal(t, 2, source.calls)
	assert.NoError(t, c.Invalidate(ctx, 1))
}
