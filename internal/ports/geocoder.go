package ports

import (
	"commute-estimator-service/internal/domain"
	"context"
)

// Resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
