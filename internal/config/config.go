package config

import (
	"commute-estimator-service/internal/domain"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type CacheBackend string

const (
	CacheSQLite   CacheBackend = "sqlite"
	CachePostgres CacheBackend = "postgres"
	CacheRedis    CacheBackend = "redis"
	CacheNone     CacheBackend = "none"
)

// Config holds everything the server needs from its environment.
type Config struct {
	Port   string
	AppEnv string

	CacheBackend  CacheBackend
	DBPath        string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LegCacheTTL   time.Duration

	ORSAPIKey   string
	ORSBaseURL  string
	OverpassURL string

	DefaultCenterLat  float64
	DefaultCenterLng  float64
	DefaultPointCount int

	GeocodeSeedPath string
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the server configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            Get("PORT", "8080"),
		AppEnv:          Get("APP_ENV", "development"),
		CacheBackend:    CacheBackend(strings.ToLower(Get("CACHE_BACKEND", string(CacheSQLite)))),
		DBPath:          Get("DB_PATH", "data/app.db"),
		DatabaseURL:     Get("DATABASE_URL", ""),
		RedisAddr:       Get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ORSAPIKey:       Get("ORS_API_KEY", ""),
		ORSBaseURL:      Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
		OverpassURL:     Get("OVERPASS_URL", ""),
		GeocodeSeedPath: Get("GEOCODE_SEED_PATH", ""),
	}

	var errs []error

	cfg.RedisDB = getInt("REDIS_DB", 0, &errs)
	cfg.LegCacheTTL = getDuration("LEG_CACHE_TTL", 7*24*time.Hour, &errs)
	cfg.DefaultCenterLat = getFloat("DEFAULT_CENTER_LAT", 50, &errs)
	cfg.DefaultCenterLng = getFloat("DEFAULT_CENTER_LNG", -90, &errs)
	cfg.DefaultPointCount = getInt("DEFAULT_POINT_COUNT", 100, &errs)

	if cfg.ORSAPIKey == "" {
		errs = append(errs, errors.New("ORS_API_KEY is required"))
	}

	switch cfg.CacheBackend {
	case CacheSQLite, CacheRedis, CacheNone:
	case CachePostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when CACHE_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("CACHE_BACKEND %q is not one of sqlite, postgres, redis, none", cfg.CacheBackend))
	}

	// Valid also rejects NaN and infinities, which ParseFloat accepts.
	center := domain.Coordinates{Lat: cfg.DefaultCenterLat, Lng: cfg.DefaultCenterLng}
	if !center.Valid() {
		errs = append(errs, fmt.Errorf("DEFAULT_CENTER_LAT/LNG (%v, %v) out of range", cfg.DefaultCenterLat, cfg.DefaultCenterLng))
	}
	if cfg.DefaultPointCount < 0 || cfg.DefaultPointCount > domain.MaxPointCount {
		errs = append(errs, fmt.Errorf("DEFAULT_POINT_COUNT must be between 0 and %d, got %d", domain.MaxPointCount, cfg.DefaultPointCount))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func getInt(key string, fallback int, errs *[]error) int {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64, errs *[]error) float64 {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}
