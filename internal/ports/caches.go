package ports

import (
	"commute-estimator-service/internal/domain"
	"context"
)

// Persistent store of previously fetched route legs.
type LegCache interface {
	// Return the cached leg and whether it was found.
	GetLeg(ctx context.Context, origin, destination domain.Coordinates) (*domain.RouteLeg, bool, error)
	PutLeg(ctx context.Context, origin, destination domain.Coordinates, leg *domain.RouteLeg) error
}

// Persistent store mapping normalized addresses to coordinates.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
