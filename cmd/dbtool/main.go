package main

import (
	"commute-estimator-service/internal/adapters/cache"
	"commute-estimator-service/internal/config"
	"commute-estimator-service/internal/platform/db"
	"commute-estimator-service/internal/platform/obs"
	"context"
	"database/sql"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// dbtool prepares a Postgres cache database: it creates the cache tables and
// optionally preloads the geocode cache from a JSON seed file.
func main() {
	dotenv := config.LoadDotEnv()

	log, err := obs.NewLogger(config.Get("APP_ENV", "development"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !dotenv {
		log.Info("no .env file found, using environment variables")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	seedPath := config.Get("GEOCODE_SEED_PATH", config.Get("SEED_PATH", "data/seeds/geocodes.json"))
	if err := initAndSeed(context.Background(), log, conn, seedPath); err != nil {
		log.Fatal("dbtool failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, log *zap.Logger, conn *sql.DB, seedPath string) error {
	log.Info("initializing database schema...")
	if err := db.InitSchema(ctx, conn, db.Postgres); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("schema ready")

	log.Info("seeding geocode cache...", zap.String("path", seedPath))
	n, err := cache.SeedGeocodesFromJSON(ctx, cache.NewSQLGeocodeCache(conn), seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info("seeding complete", zap.Int("addresses", n))

	return nil
}
