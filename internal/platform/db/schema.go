package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Dialect selects the DDL flavour for InitSchema.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Initialize the cache tables. Leg measurements are nullable: an absent
// distance or duration is cached as NULL, not zero.
func InitSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	realType := "REAL"
	switch dialect {
	case SQLite:
	case Postgres:
		realType = "DOUBLE PRECISION"
	default:
		return fmt.Errorf("init schema: unknown dialect %q", dialect)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLegCacheQuery := `
	CREATE TABLE IF NOT EXISTS leg_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_meters INTEGER,
        duration_seconds INTEGER,
        PRIMARY KEY (origin, destination)
    );
	`

	createGeocodeCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lat %[1]s NOT NULL,
        lng %[1]s NOT NULL
    );
	`, realType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_leg_cache_destination_origin
    ON leg_cache(destination, origin);
	`

	statements := []string{
		createLegCacheQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
