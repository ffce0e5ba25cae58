package services

import (
	"commute-estimator-service/internal/domain"
	"math/rand/v2"
)

// A generated demo marker with its ring placement.
type Point struct {
	Key            int
	Location       domain.Coordinates
	DistanceMeters float64
	Zone           domain.CommuteZone
}

type PointService struct {
	defaultCount int
}

func NewPointService(defaultCount int) *PointService {
	if defaultCount < 0 {
		defaultCount = domain.DefaultPointCount
	}
	return &PointService{defaultCount: defaultCount}
}

func (s *PointService) DefaultCount() int { return s.defaultCount }

// Generate seeds demo markers around center. A nil count uses the service
// default; a non-nil seed makes the scatter reproducible.
func (s *PointService) Generate(center domain.Coordinates, count *int, seed *uint64) []Point {
	n := s.defaultCount
	if count != nil {
		n = *count
	}

	var rng domain.RandomSource
	if seed != nil {
		rng = rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	}

	locations := domain.GeneratePoints(center, n, rng)

	points := make([]Point, 0, len(locations))
	for i, loc := range locations {
		d := domain.GreatCircleMeters(center, loc)
		points = append(points, Point{
			Key:            i,
			Location:       loc,
			DistanceMeters: d,
			Zone:           domain.ZoneForDistance(d),
		})
	}

	return points
}
