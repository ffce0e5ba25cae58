package cache

import (
	"commute-estimator-service/internal/domain"
	"database/sql"
)

// nullableInt maps an absent measurement to SQL NULL.
func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func legFromRow(meters, seconds sql.NullInt64) *domain.RouteLeg {
	leg := &domain.RouteLeg{}
	if meters.Valid {
		m := int(meters.Int64)
		leg.DistanceMeters = &m
	}
	if seconds.Valid {
		s := int(seconds.Int64)
		leg.DurationSeconds = &s
	}
	return leg
}
