package routing

import (
	"commute-estimator-service/internal/domain"
	"context"
	"fmt"
	"sync"
)

type MockPair struct {
	From, To domain.Coordinates
	Leg      *domain.RouteLeg
	Err      error
}

// MockRouteProvider serves canned legs and geocodes; it records call counts.
type MockRouteProvider struct {
	legs      map[string]MockPair
	addresses map[string]domain.Coordinates

	mu    sync.Mutex
	calls int
}

func NewMockRouteProvider(pairs []MockPair) *MockRouteProvider {
	m := make(map[string]MockPair, len(pairs))
	for _, p := range pairs {
		m[p.From.Key()+"|"+p.To.Key()] = p
	}
	return &MockRouteProvider{legs: m, addresses: map[string]domain.Coordinates{}}
}

// WithAddress registers a geocode answer.
func (p *MockRouteProvider) WithAddress(address string, c domain.Coordinates) *MockRouteProvider {
	p.addresses[address] = c
	return p
}

func (p *MockRouteProvider) GetLeg(ctx context.Context, origin, destination domain.Coordinates) (*domain.RouteLeg, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pair, ok := p.legs[origin.Key()+"|"+destination.Key()]
	if !ok {
		return nil, fmt.Errorf("missing pair %s -> %s: %w", origin.Key(), destination.Key(), ErrNoRoute)
	}
	if pair.Err != nil {
		return nil, pair.Err
	}

	return pair.Leg, nil
}

func (p *MockRouteProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := p.addresses[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ErrNoGeocodeResult)
	}
	return c, nil
}

// Calls returns how many times GetLeg was invoked.
func (p *MockRouteProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
