package services

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"
)

// CenterSource records how a center was obtained.
type CenterSource string

const (
	CenterFromCoordinates CenterSource = "coordinates"
	CenterFromAddress     CenterSource = "address"
	CenterFromDefault     CenterSource = "default"
)

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// CenterQuery is what a caller knows about the home/office position.
// Coordinates take precedence over Address.
type CenterQuery struct {
	Coordinates *domain.Coordinates
	Address     string
}

type CenterResolver struct {
	geocoder ports.Geocoder
	fallback domain.Coordinates
}

func NewCenterResolver(geocoder ports.Geocoder, fallback domain.Coordinates) *CenterResolver {
	return &CenterResolver{geocoder: geocoder, fallback: fallback}
}

// Resolve picks the center from explicit coordinates, a geocoded address, or
// the configured default, in that order.
func (r *CenterResolver) Resolve(ctx context.Context, q CenterQuery) (domain.Coordinates, CenterSource, error) {
	if q.Coordinates != nil {
		if !q.Coordinates.Valid() {
			return domain.Coordinates{}, "", ErrInvalidCoordinates
		}
		return *q.Coordinates, CenterFromCoordinates, nil
	}

	if addr := strings.TrimSpace(q.Address); addr != "" {
		if r.geocoder == nil {
			return domain.Coordinates{}, "", errors.New("resolve center: no geocoder configured")
		}
		c, err := r.geocoder.Geocode(ctx, addr)
		if err != nil {
			return domain.Coordinates{}, "", fmt.Errorf("resolve center: %w", err)
		}
		return c, CenterFromAddress, nil
	}

	return r.fallback, CenterFromDefault, nil
}
