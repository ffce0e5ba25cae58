package domain

import "math/rand/v2"

// DefaultPointCount is the number of demo markers seeded around a center.
const DefaultPointCount = 100

// MaxPointCount bounds a single request for demo markers.
const MaxPointCount = 1000

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// GeneratePoints scatters count synthetic points of interest around center.
//
// Each axis independently draws r in [0, 1) and a divisor of -2 or +2, so every
// offset lies in (-0.5, 0.5) degrees. The result is not clamped to valid
// WGS84 bounds. A nil rng uses the process-wide source; count <= 0 yields an
// empty slice.
func GeneratePoints(center Coordinates, count int, rng RandomSource) []Coordinates {
	if count <= 0 {
		return []Coordinates{}
	}
	if rng == nil {
		rng = globalSource{}
	}

	points := make([]Coordinates, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, Coordinates{
			Lat: center.Lat + scatterOffset(rng),
			Lng: center.Lng + scatterOffset(rng),
		})
	}

	return points
}

func scatterOffset(rng RandomSource) float64 {
	divisor := 2.0
	if rng.Float64() < 0.5 {
		divisor = -2.0
	}
	return rng.Float64() / divisor
}
