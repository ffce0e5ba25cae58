package main

import (
	"commute-estimator-service/internal/adapters/cache"
	"commute-estimator-service/internal/adapters/places"
	"commute-estimator-service/internal/adapters/routing"
	"commute-estimator-service/internal/api"
	"commute-estimator-service/internal/config"
	"commute-estimator-service/internal/domain"
	"commute-estimator-service/internal/platform/db"
	"commute-estimator-service/internal/platform/obs"
	"commute-estimator-service/internal/ports"
	"commute-estimator-service/internal/services"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// caches bundles the selected cache backend; close releases its connection.
type caches struct {
	legs     ports.LegCache
	geocodes ports.GeocodeCache
	close    func() error
}

// main is the application composition root.
// It wires concrete adapters (caches, ORS, Overpass) behind ports and starts the HTTP server.
func main() {
	dotenv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := obs.NewLogger(cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !dotenv {
		log.Info("no .env file found, using environment variables")
	}
	log.Info("starting commute-estimator",
		zap.String("port", cfg.Port),
		zap.String("cache_backend", string(cfg.CacheBackend)),
	)

	ctx := context.Background()

	c, err := openCaches(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open caches", zap.Error(err))
	}
	defer func() { _ = c.close() }()

	if cfg.GeocodeSeedPath != "" && c.geocodes != nil {
		n, err := cache.SeedGeocodesFromJSON(ctx, c.geocodes, cfg.GeocodeSeedPath)
		if err != nil {
			log.Fatal("failed to seed geocode cache", zap.Error(err))
		}
		log.Info("geocode cache seeded", zap.Int("addresses", n), zap.String("path", cfg.GeocodeSeedPath))
	}

	provider, err := routing.NewORSRouteProvider(
		cfg.ORSAPIKey, c.legs, c.geocodes,
		routing.WithBaseURL(cfg.ORSBaseURL),
	)
	if err != nil {
		log.Fatal("failed to create route provider", zap.Error(err))
	}

	var placeSource ports.PlaceSource
	if cfg.OverpassURL != "" {
		placeSource = places.NewOverpassPlaceSource(cfg.OverpassURL, 30*time.Second)
	} else {
		log.Info("OVERPASS_URL not set, /places is disabled")
	}

	center := domain.Coordinates{Lat: cfg.DefaultCenterLat, Lng: cfg.DefaultCenterLng}
	router := api.NewRouter(api.Services{
		Centers:  services.NewCenterResolver(provider, center),
		Points:   services.NewPointService(cfg.DefaultPointCount),
		Commutes: services.NewCommuteService(provider),
		Places:   services.NewPlaceService(placeSource),
	})

	// Batch commutes on a cold cache wait on several ORS calls.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down commute-estimator...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("commute-estimator stopped")
}

// openCaches connects the configured backend. Redis only caches legs;
// geocodes then always go to ORS.
func openCaches(ctx context.Context, cfg *config.Config) (*caches, error) {
	switch cfg.CacheBackend {
	case config.CacheSQLite:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := db.InitSchema(ctx, conn, db.SQLite); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return &caches{
			legs:     cache.NewSqliteLegCache(conn),
			geocodes: cache.NewSqliteGeocodeCache(conn),
			close:    conn.Close,
		}, nil

	case config.CachePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.InitSchema(ctx, conn, db.Postgres); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return &caches{
			legs:     cache.NewSQLLegCache(conn),
			geocodes: cache.NewSQLGeocodeCache(conn),
			close:    conn.Close,
		}, nil

	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("open caches: ping redis %s: %w", cfg.RedisAddr, err)
		}
		return &caches{
			legs:  cache.NewRedisLegCache(client, cfg.LegCacheTTL),
			close: client.Close,
		}, nil

	default:
		return &caches{close: func() error { return nil }}, nil
	}
}
