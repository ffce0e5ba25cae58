package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ORS_API_KEY", "key")
	for _, k := range []string{"PORT", "CACHE_BACKEND", "DEFAULT_CENTER_LAT", "DEFAULT_CENTER_LNG", "DEFAULT_POINT_COUNT", "LEG_CACHE_TTL", "OVERPASS_URL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CacheSQLite, cfg.CacheBackend)
	assert.Equal(t, 50.0, cfg.DefaultCenterLat)
	assert.Equal(t, -90.0, cfg.DefaultCenterLng)
	assert.Equal(t, 100, cfg.DefaultPointCount)
	assert.Equal(t, 7*24*time.Hour, cfg.LegCacheTTL)
	assert.Empty(t, cfg.OverpassURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ORS_API_KEY", "key")
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LEG_CACHE_TTL", "1h")
	t.Setenv("DEFAULT_CENTER_LAT", "43.45")
	t.Setenv("DEFAULT_CENTER_LNG", "-80.49")
	t.Setenv("DEFAULT_POINT_COUNT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Hour, cfg.LegCacheTTL)
	assert.Equal(t, 43.45, cfg.DefaultCenterLat)
	assert.Equal(t, -80.49, cfg.DefaultCenterLng)
	assert.Equal(t, 25, cfg.DefaultPointCount)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("ORS_API_KEY", "")
	t.Setenv("CACHE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEFAULT_CENTER_LAT", "north")
	t.Setenv("DEFAULT_POINT_COUNT", "-1")

	_, err := Load()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "ORS_API_KEY is required")
	assert.Contains(t, msg, "DATABASE_URL is required")
	assert.Contains(t, msg, "DEFAULT_CENTER_LAT")
	assert.Contains(t, msg, "DEFAULT_POINT_COUNT must be between 0 and 1000")
}

func TestLoadRejectsNonFiniteCenter(t *testing.T) {
	tests := []struct {
		name string
		lat  string
		lng  string
	}{
		{"nan lat", "NaN", "-90"},
		{"nan lng", "50", "nan"},
		{"infinite lat", "+Inf", "-90"},
		{"infinite lng", "50", "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ORS_API_KEY", "key")
			t.Setenv("CACHE_BACKEND", "sqlite")
			t.Setenv("DEFAULT_CENTER_LAT", tt.lat)
			t.Setenv("DEFAULT_CENTER_LNG", tt.lng)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() with center (%s, %s) succeeded, want error", tt.lat, tt.lng)
			}
			assert.Contains(t, err.Error(), "DEFAULT_CENTER_LAT/LNG")
		})
	}
}

func TestLoadPointCountUpperBound(t *testing.T) {
	t.Setenv("ORS_API_KEY", "key")
	t.Setenv("CACHE_BACKEND", "sqlite")

	t.Setenv("DEFAULT_POINT_COUNT", "1000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.DefaultPointCount)

	t.Setenv("DEFAULT_POINT_COUNT", "1001")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_POINT_COUNT must be between 0 and 1000")
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("ORS_API_KEY", "key")
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memcached")
}

func TestGetFallback(t *testing.T) {
	t.Setenv("SEED_PATH", "  ")
	assert.Equal(t, "fallback", Get("SEED_PATH", "fallback"))

	t.Setenv("SEED_PATH", "data/seed.json")
	assert.Equal(t, "data/seed.json", Get("SEED_PATH", "fallback"))
}
