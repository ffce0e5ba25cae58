package ports

import (
	"commute-estimator-service/internal/domain"
	"context"
)

// Contract for retrieving a single driving leg between two locations.
type RouteProvider interface {
	// Return the leg from origin to destination. The leg may carry absent
	// measurements; transport and service failures are returned as errors.
	GetLeg(ctx context.Context, origin, destination domain.Coordinates) (*domain.RouteLeg, error)
}
