package ports

import (
	"commute-estimator-service/internal/domain"
	"context"
)

// Port: a boundary for looking up real places around a center.
type PlaceSource interface {
	NearbyPlaces(ctx context.Context, center domain.Coordinates, radiusMeters float64, kind domain.PlaceKind) ([]domain.Place, error)
}
