package cache

import (
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type GeocodeSeed struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Populate a geocode cache with known addresses from a JSON file.
// Addresses are whitespace-normalized the same way the ORS geocoder keys them.
func SeedGeocodesFromJSON(ctx context.Context, cache ports.GeocodeCache, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed geocodes: read %q: %w", jsonPath, err)
	}

	var data []GeocodeSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed geocodes: parse json: %w", err)
	}

	rows := make(map[string]domain.Coordinates, len(data))
	for i, item := range data {
		addr := strings.Join(strings.Fields(item.Address), " ")
		if addr == "" {
			return 0, fmt.Errorf("seed geocodes: item #%d: address cannot be empty", i+1)
		}

		c := domain.Coordinates{Lat: item.Lat, Lng: item.Lng}
		if !c.Valid() {
			return 0, fmt.Errorf("seed geocodes: item #%d: coordinates (%v, %v) out of range", i+1, item.Lat, item.Lng)
		}
		rows[addr] = c
	}

	if err := cache.PutMany(ctx, rows); err != nil {
		return 0, fmt.Errorf("seed geocodes: %w", err)
	}

	return len(rows), nil
}
