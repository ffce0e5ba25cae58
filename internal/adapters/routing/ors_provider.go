package routing

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/platform/obs"
	"commute-estimator-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNoRoute         = errors.New("no route between the given locations")
	ErrNoGeocodeResult = errors.New("address could not be geocoded")
)

// ORSRouteProvider implements RouteProvider and Geocoder using OpenRouteService.
//
// It coordinates:
//   - Persistent leg caching
//   - Address normalization and persistent geocode caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	legCache     ports.LegCache
	geocodeCache ports.GeocodeCache
}

type Option func(*ORSRouteProvider)

func WithBaseURL(baseURL string) Option {
	return func(o *ORSRouteProvider) { o.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *ORSRouteProvider) { o.session = c }
}

// Either cache may be nil, in which case every lookup goes to ORS.
func NewORSRouteProvider(
	apiKey string,
	legCache ports.LegCache,
	geocodeCache ports.GeocodeCache,
	opts ...Option,
) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSRouteProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		profile:      "driving-car",
		legCache:     legCache,
		geocodeCache: geocodeCache,
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSRouteProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// GetLeg returns the driving leg from origin to destination, consulting the
// leg cache first. Identical endpoints short-circuit to a zero leg.
func (o *ORSRouteProvider) GetLeg(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ *domain.RouteLeg, err error) {
	defer obs.Time(ctx, "ors.GetLeg")(&err)

	if !origin.Valid() || !destination.Valid() {
		return nil, fmt.Errorf("get ORS leg: coordinates out of range: %s -> %s", origin.Key(), destination.Key())
	}

	if origin.Key() == destination.Key() {
		return domain.NewRouteLeg(0, 0), nil
	}

	// Check persistent leg cache before issuing external API calls.
	if o.legCache != nil {
		leg, found, err := o.legCache.GetLeg(ctx, origin, destination)
		if err != nil {
			return nil, fmt.Errorf("ORS get leg cache: %w", err)
		}
		if found {
			return leg, nil
		}
	}

	leg, err := o.fetchLeg(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("fetching leg %s -> %s: %w", origin.Key(), destination.Key(), err)
	}

	// An incomplete leg means "no route yet"; caching it would pin that answer.
	if o.legCache != nil && leg.Complete() {
		if err := o.legCache.PutLeg(ctx, origin, destination, leg); err != nil {
			zap.L().Warn("leg cache write failed", zap.Error(err))
		}
	}

	return leg, nil
}

// Geocode resolves an address, consulting the geocode cache first.
func (o *ORSRouteProvider) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := o.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	// Resolve coordinates via cache before calling ORS geocoding.
	if o.geocodeCache != nil {
		hits, err := o.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("ORS get geocode cache: %w", err)
		}
		if c, ok := hits[norm]; ok {
			return c, nil
		}
	}

	c, err := o.geocodeOne(ctx, norm)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: c}); err != nil {
			zap.L().Warn("geocode cache write failed", zap.Error(err))
		}
	}

	return c, nil
}
