package cache

import (
	"commute-estimator-service/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisLegCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	c := NewRedisLegCache(client, time.Hour)

	_, found, err := c.GetLeg(ctx, home, office)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.PutLeg(ctx, home, office, domain.NewRouteLeg(20000, 1800)))

	leg, found, err := c.GetLeg(ctx, home, office)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 20000, *leg.DistanceMeters)
	assert.Equal(t, 1800, *leg.DurationSeconds)
}

func TestRedisLegCacheExpires(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisLegCache(client, time.Minute)

	require.NoError(t, c.PutLeg(ctx, home, office, domain.NewRouteLeg(1, 1)))
	assert.True(t, mr.Exists(legKey(home, office)))

	mr.FastForward(2 * time.Minute)

	_, found, err := c.GetLeg(ctx, home, office)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisLegCacheAbsentMeasurement(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	c := NewRedisLegCache(client, 0)

	s := 600
	require.NoError(t, c.PutLeg(ctx, home, office, &domain.RouteLeg{DurationSeconds: &s}))

	leg, found, err := c.GetLeg(ctx, home, office)
	require.NoError(t, err)
	require.True(t, found)
	assert.Nil(t, leg.DistanceMeters)
	assert.Equal(t, 600, *leg.DurationSeconds)
}

func TestRedisLegCacheCorruptValue(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisLegCache(client, 0)

	require.NoError(t, mr.Set(legKey(home, office), "not json"))

	_, _, err := c.GetLeg(ctx, home, office)
	assert.Error(t, err)
}

func TestRedisLegCacheServerDown(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisLegCache(client, 0)

	mr.Close()

	_, _, err := c.GetLeg(ctx, home, office)
	assert.Error(t, err)
	assert.Error(t, c.PutLeg(ctx, home, office, domain.NewRouteLeg(1, 1)))
}
