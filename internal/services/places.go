package services

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrNoPlaceSource = errors.New("no place source configured")

// A real place annotated with its distance from the center.
type NearbyPlace struct {
	Place          domain.Place
	DistanceMeters float64
	Zone           domain.CommuteZone
}

type PlaceService struct {
	source ports.PlaceSource
}

// source may be nil; Nearby then fails with ErrNoPlaceSource.
func NewPlaceService(source ports.PlaceSource) *PlaceService {
	return &PlaceService{source: source}
}

// SearchRadius maps a requested radius onto (0, outermost ring]. NaN maps to
// the outermost ring.
func SearchRadius(radiusMeters float64) float64 {
	maxRadius := domain.MaxRingRadiusMeters()
	if math.IsNaN(radiusMeters) || radiusMeters <= 0 || radiusMeters > maxRadius {
		return maxRadius
	}
	return radiusMeters
}

// Nearby returns places of kind around center sorted by distance. A
// non-positive radius means the outermost commute ring, and larger radii are
// capped to it.
func (s *PlaceService) Nearby(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters float64,
	kind domain.PlaceKind,
) ([]NearbyPlace, error) {
	if s.source == nil {
		return nil, ErrNoPlaceSource
	}

	radiusMeters = SearchRadius(radiusMeters)

	found, err := s.source.NearbyPlaces(ctx, center, radiusMeters, kind)
	if err != nil {
		return nil, fmt.Errorf("nearby places: %w", err)
	}

	out := make([]NearbyPlace, 0, len(found))
	for _, p := range found {
		d := domain.GreatCircleMeters(center, p.Location)
		out = append(out, NearbyPlace{
			Place:          p,
			DistanceMeters: d,
			Zone:           domain.ZoneForDistance(d),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceMeters < out[j].DistanceMeters })

	return out, nil
}
