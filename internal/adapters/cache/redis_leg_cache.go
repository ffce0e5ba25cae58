package cache

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const legKeyPrefix = "leg:"

// legValue is the JSON form stored in Redis; null fields are absent measurements.
type legValue struct {
	DistanceMeters  *int `json:"distance_meters"`
	DurationSeconds *int `json:"duration_seconds"`
}

// RedisLegCache stores route legs as JSON strings with a TTL.
type RedisLegCache struct {
	client *redis.Client
	ttl    time.Duration
}

// A ttl of zero keeps entries until evicted.
func NewRedisLegCache(client *redis.Client, ttl time.Duration) *RedisLegCache {
	return &RedisLegCache{client: client, ttl: ttl}
}

func legKey(origin, destination domain.Coordinates) string {
	return legKeyPrefix + origin.Key() + "|" + destination.Key()
}

func (r *RedisLegCache) GetLeg(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ *domain.RouteLeg, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.redis.GetLeg")(&err)

	if r.client == nil {
		return nil, false, errors.New("leg cache: redis client is nil")
	}

	raw, err := r.client.Get(ctx, legKey(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get leg cache: redis get: %w", err)
	}

	var v legValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("get leg cache: decode value: %w", err)
	}

	return &domain.RouteLeg{DistanceMeters: v.DistanceMeters, DurationSeconds: v.DurationSeconds}, true, nil
}

func (r *RedisLegCache) PutLeg(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	leg *domain.RouteLeg,
) error {
	if r.client == nil {
		return errors.New("leg cache: redis client is nil")
	}

	if leg == nil {
		return errors.New("insert leg cache: leg must not be nil")
	}

	payload, err := json.Marshal(legValue{DistanceMeters: leg.DistanceMeters, DurationSeconds: leg.DurationSeconds})
	if err != nil {
		return fmt.Errorf("insert leg cache: encode value: %w", err)
	}

	if err := r.client.Set(ctx, legKey(origin, destination), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert leg cache: redis set: %w", err)
	}

	return nil
}
