package places

import (
	"commute-estimator-service/internal/domain"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overpassBody = `{
  "version": 0.6,
  "osm3s": {"timestamp_osm_base": "2024-05-01T00:00:00Z"},
  "elements": [
    {"type": "node", "id": 20, "lat": 43.47, "lon": -80.52, "tags": {"amenity": "cafe", "addr:housenumber": "12", "addr:street": "King St"}},
    {"type": "node", "id": 10, "lat": 43.46, "lon": -80.50, "tags": {"amenity": "restaurant", "name": "Diner"}}
  ]
}`

func TestNearbyPlaces(t *testing.T) {
	queries := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		queries <- r.PostFormValue("data")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(overpassBody))
	}))
	defer srv.Close()

	src := NewOverpassPlaceSource(srv.URL, 5*time.Second)

	got, err := src.NearbyPlaces(context.Background(), domain.Coordinates{Lat: 43.45, Lng: -80.49}, 15000, domain.PlaceRestaurant)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, "Diner", got[0].Name)
	assert.Equal(t, domain.PlaceRestaurant, got[0].Kind)
	assert.Equal(t, domain.Coordinates{Lat: 43.46, Lng: -80.50}, got[0].Location)
	assert.Equal(t, "12 King St", got[1].Name)

	query := <-queries
	assert.Contains(t, query, "around:15000,43.450000,-80.490000")
	assert.Contains(t, query, `"amenity"~"restaurant|cafe|fast_food"`)
}

func TestNearbyPlacesUnsupportedKind(t *testing.T) {
	src := NewOverpassPlaceSource("http://127.0.0.1:0", time.Second)

	_, err := src.NearbyPlaces(context.Background(), domain.Coordinates{}, 1000, domain.PlaceKind("castle"))
	assert.Error(t, err)
}

func TestNearbyPlacesCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	src := NewOverpassPlaceSource(srv.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := src.NearbyPlaces(ctx, domain.Coordinates{Lat: 1, Lng: 1}, 1000, domain.PlaceHouse)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
