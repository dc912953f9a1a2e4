package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/wifi-on-ice/dashboard/internal/config"
)

// OpenStore connects to the store selected by cfg: PostgreSQL when
// DATABASE_URL is set, the SQLite file otherwise. The returned func
// releases the connection.
func OpenStore(ctx context.Context, cfg *config.Config) (MeasurementStore, func(), error) {
	if cfg.UsePostgres() {
		log.Printf("Connecting to PostgreSQL measurement store (table %s)", cfg.Table)
		repo, err := NewPostgresMeasurementRepository(ctx, cfg.DatabaseURL, cfg.Table)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	}

	log.Printf("Connecting to SQLite database: %s", cfg.SQLitePath)
	sqliteDB, err := NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	if cfg.Table == "wifi_on_ice" {
		if err := sqliteDB.EnsureSchema(ctx); err != nil {
			sqliteDB.Close()
			return nil, nil, err
		}
	}

	repo, err := NewSQLiteMeasurementRepository(sqliteDB.GetDB(), cfg.Table)
	if err != nil {
		sqliteDB.Close()
		return nil, nil, err
	}
	closeFn := func() {
		if err := sqliteDB.Close(); err != nil {
			log.Printf("Warning: failed to close SQLite database: %v", err)
		}
	}
	return repo, closeFn, nil
}
