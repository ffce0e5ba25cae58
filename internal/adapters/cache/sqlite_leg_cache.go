package cache

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite backed cache for origin->destination route legs.
// Keys are coordinate keys (see domain.Coordinates.Key).
type SqliteLegCache struct {
	DB *sql.DB
}

func NewSqliteLegCache(db *sql.DB) *SqliteLegCache {
	return &SqliteLegCache{DB: db}
}

// Fetch the cached leg for one origin/destination pair.
func (s *SqliteLegCache) GetLeg(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ *domain.RouteLeg, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.sqlite.GetLeg")(&err)

	if s.DB == nil {
		return nil, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT
        distance_meters,
        duration_seconds
    FROM leg_cache
    WHERE origin = ?
        AND destination = ?;
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

// Store a leg, replacing any previous entry for the pair.
func (s *SqliteLegCache) PutLeg(
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
	INSERT OR REPLACE INTO leg_cache (
        origin,
        destination,
        distance_meters,
        duration_seconds
    )
    VALUES (?, ?, ?, ?);
	`, origin.Key(), destination.Key(), nullableInt(leg.DistanceMeters), nullableInt(leg.DurationSeconds))
	if err != nil {
		return fmt.Errorf("insert leg cache %s -> %s: %w", origin.Key(), destination.Key(), err)
	}

	return nil
}
