package cache

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLLegCache is a Postgres-backed cache for origin->destination route legs.
type SQLLegCache struct {
	DB *sql.DB
}

func NewSQLLegCache(db *sql.DB) *SQLLegCache {
	return &SQLLegCache{DB: db}
}

func (s *SQLLegCache) GetLeg(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ *domain.RouteLeg, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.sql.GetLeg")(&err)

	if s.DB == nil {
		return nil, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT distance_meters, duration_seconds
    FROM leg_cache
    WHERE origin = $1
        AND destination = $2;
	`

	var meters, seconds sql.NullInt64
	err = s.DB.QueryRowContext(ctx, q, origin.Key(), destination.Key()).Scan(&meters, &seconds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get leg cache: query leg_cache table: %w", err)
	}

	return legFromRow(meters, seconds), true, nil
}

func (s *SQLLegCache) PutLeg(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	leg *domain.RouteLeg,
) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	if leg == nil {
		return errors.New("insert leg cache: leg must not be nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO leg_cache (origin, destination, distance_meters, duration_seconds)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`, origin.Key(), destination.Key(), nullableInt(leg.DistanceMeters), nullableInt(leg.DurationSeconds))
	if err != nil {
		return fmt.Errorf("insert leg cache %s -> %s: %w", origin.Key(), destination.Key(), err)
	}

	return nil
}
