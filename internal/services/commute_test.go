package services

import (
	"commute-estimator-service/internal/adapters/routing"
	"commute-estimator-service/internal/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	home   = domain.Coordinates{Lat: 43.45, Lng: -80.49}
	office = domain.Coordinates{Lat: 43.65, Lng: -79.38}
	cafe   = domain.Coordinates{Lat: 43.47, Lng: -80.52}
	cabin  = domain.Coordinates{Lat: 45.0, Lng: -79.0}
)

func newMockRoutes() *routing.MockRouteProvider {
	d := 3000
	return routing.NewMockRouteProvider([]routing.MockPair{
		{From: home, To: office, Leg: domain.NewRouteLeg(20000, 1800)},
		{From: home, To: cafe, Leg: domain.NewRouteLeg(3500, 420)},
		{From: home, To: cabin, Leg: &domain.RouteLeg{DistanceMeters: &d}},
	})
}

func TestCommuteServiceEstimate(t *testing.T) {
	svc := NewCommuteService(newMockRoutes())

	res, err := svc.Estimate(context.Background(), home, office)
	require.NoError(t, err)

	assert.Equal(t, office, res.Destination)
	assert.Equal(t, 20000, *res.Leg.DistanceMeters)
	require.NotNil(t, res.Estimate)
	assert.Equal(t, domain.CommuteEstimate{DaysPerYear: 10, AnnualCost: 1560}, *res.Estimate)
}

func TestCommuteServiceEstimateIncompleteLeg(t *testing.T) {
	svc := NewCommuteService(newMockRoutes())

	res, err := svc.Estimate(context.Background(), home, cabin)
	require.NoError(t, err)
	assert.NotNil(t, res.Leg)
	assert.Nil(t, res.Estimate, "an incomplete leg yields no estimate")
}

func TestCommuteServiceEstimateRoutingFailure(t *testing.T) {
	svc := NewCommuteService(newMockRoutes())

	_, err := svc.Estimate(context.Background(), office, home)
	assert.ErrorIs(t, err, routing.ErrNoRoute)
}

func TestCommuteServiceEstimateNegativeLeg(t *testing.T) {
	routes := routing.NewMockRouteProvider([]routing.MockPair{
		{From: home, To: office, Leg: domain.NewRouteLeg(-5, 10)},
	})

	_, err := NewCommuteService(routes).Estimate(context.Background(), home, office)
	assert.ErrorIs(t, err, domain.ErrNegativeMeasurement)
}

func TestCommuteServiceEstimateMany(t *testing.T) {
	routes := newMockRoutes()
	svc := NewCommuteService(routes)

	dests := []domain.Coordinates{cafe, office, cabin}
	got, err := svc.EstimateMany(context.Background(), home, dests)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, d := range dests {
		assert.Equal(t, d, got[i].Destination, "result %d out of order", i)
	}
	assert.Equal(t, 1560, got[1].Estimate.AnnualCost)
	assert.Nil(t, got[2].Estimate)
	assert.Equal(t, 3, routes.Calls())
}

func TestCommuteServiceEstimateManyFails(t *testing.T) {
	boom := errors.New("boom")
	routes := routing.NewMockRouteProvider([]routing.MockPair{
		{From: home, To: office, Leg: domain.NewRouteLeg(1, 1)},
		{From: home, To: cafe, Err: boom},
	})

	_, err := NewCommuteService(routes).EstimateMany(context.Background(), home, []domain.Coordinates{office, cafe})
	assert.ErrorIs(t, err, boom)
}

func TestCommuteServiceEstimateManyLimits(t *testing.T) {
	svc := NewCommuteService(newMockRoutes())

	got, err := svc.EstimateMany(context.Background(), home, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.EstimateMany(context.Background(), home, make([]domain.Coordinates, MaxBatchDestinations+1))
	assert.ErrorIs(t, err, ErrTooManyDestinations)
}
