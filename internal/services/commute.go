package services

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/ports"
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxBatchDestinations bounds EstimateMany; each destination costs one routing call.
const MaxBatchDestinations = 25

// concurrent routing calls per batch
const batchConcurrency = 5

var ErrTooManyDestinations = fmt.Errorf("at most %d destinations per batch", MaxBatchDestinations)

// CommuteResult pairs the routed leg with its estimate. Estimate is nil when
// the leg is missing a measurement.
type CommuteResult struct {
	Destination domain.Coordinates
	Leg         *domain.RouteLeg
	Estimate    *domain.CommuteEstimate
}

type CommuteService struct {
	routes ports.RouteProvider
}

func NewCommuteService(routes ports.RouteProvider) *CommuteService {
	return &CommuteService{routes: routes}
}

// Estimate routes origin -> destination and derives the yearly commute figures.
func (s *CommuteService) Estimate(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (*CommuteResult, error) {
	if s.routes == nil {
		return nil, errors.New("estimate commute: route provider is nil")
	}

	leg, err := s.routes.GetLeg(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("estimate commute: get leg: %w", err)
	}

	est, err := domain.EstimateCommute(leg)
	if err != nil {
		return nil, fmt.Errorf("estimate commute: %w", err)
	}

	return &CommuteResult{Destination: destination, Leg: leg, Estimate: est}, nil
}

// EstimateMany estimates several destinations from one origin concurrently.
// Results keep the order of destinations; the first failure cancels the rest.
func (s *CommuteService) EstimateMany(
	ctx context.Context,
	origin domain.Coordinates,
	destinations []domain.Coordinates,
) ([]*CommuteResult, error) {
	if len(destinations) > MaxBatchDestinations {
		return nil, ErrTooManyDestinations
	}

	results := make([]*CommuteResult, len(destinations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, dest := range destinations {
		g.Go(func() error {
			r, err := s.Estimate(gctx, origin, dest)
			if err != nil {
				return fmt.Errorf("destination #%d: %w", i+1, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("estimate commutes: %w", err)
	}

	return results, nil
}
