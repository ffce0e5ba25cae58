package places

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/platform/obs"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/serjvanilla/go-overpass"
)

const maxResults = 200

// OverpassPlaceSource looks up OpenStreetMap nodes around a center through an
// Overpass API endpoint.
type OverpassPlaceSource struct {
	client *overpass.Client
}

func NewOverpassPlaceSource(endpoint string, timeout time.Duration) *OverpassPlaceSource {
	httpClient := &http.Client{
		Timeout: timeout,
	}
	client := overpass.NewWithSettings(endpoint, 2, httpClient)
	return &OverpassPlaceSource{client: &client}
}

func (s *OverpassPlaceSource) NearbyPlaces(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters float64,
	kind domain.PlaceKind,
) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "overpass.NearbyPlaces")(&err)

	filter, err := tagFilter(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		[out:json][timeout:25];
		node%s(around:%.0f,%.6f,%.6f);
		out body %d;
	`, filter, radiusMeters, center.Lat, center.Lng, maxResults)

	result, err := s.executeQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("nearby %s query: %w", kind, err)
	}

	places := make([]domain.Place, 0, len(result.Nodes))
	for _, node := range result.Nodes {
		places = append(places, domain.Place{
			ID:       node.ID,
			Name:     placeName(node.Tags),
			Kind:     kind,
			Location: domain.Coordinates{Lat: node.Lat, Lng: node.Lon},
		})
	}

	// Result.Nodes is a map; sort for stable output.
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })

	return places, nil
}

// executeQuery runs the blocking client call so ctx cancellation is still honoured;
// the HTTP client timeout bounds the abandoned call.
func (s *OverpassPlaceSource) executeQuery(ctx context.Context, query string) (*overpass.Result, error) {
	type outcome struct {
		result overpass.Result
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		r, err := s.client.Query(query)
		done <- outcome{result: r, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		if o.err != nil {
			return nil, fmt.Errorf("overpass query failed: %w", o.err)
		}
		return &o.result, nil
	}
}

func tagFilter(kind domain.PlaceKind) (string, error) {
	switch kind {
	case domain.PlaceRestaurant:
		return `["amenity"~"restaurant|cafe|fast_food"]`, nil
	case domain.PlaceHouse:
		return `["building"~"house|detached|residential"]`, nil
	default:
		return "", fmt.Errorf("unsupported place kind %q", kind)
	}
}

func placeName(tags map[string]string) string {
	if name := strings.TrimSpace(tags["name"]); name != "" {
		return name
	}
	addr := strings.TrimSpace(tags["addr:housenumber"] + " " + tags["addr:street"])
	return addr
}
