package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/wifi-on-ice/dashboard/models"

	_ "modernc.org/sqlite"
)

// schemaSQL creates the measurement table for local SQLite databases
//
//go:embed schema.sql
var schemaSQL string

// SQLiteDB wraps a SQL database connection for SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens a SQLite database in WAL mode
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA cache_size = 10000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			log.Printf("Warning: failed to set %s: %v", pragma, err)
		}
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *SQLiteDB) GetDB() *sql.DB {
	return s.db
}

// EnsureSchema creates the measurement table if it doesn't exist
func (s *SQLiteDB) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SQLiteMeasurementRepository loads measurements from a SQLite table
type SQLiteMeasurementRepository struct {
	db    *sql.DB
	table string
	query string
}

// NewSQLiteMeasurementRepository creates a repository reading from table
func NewSQLiteMeasurementRepository(db *sql.DB, table string) (*SQLiteMeasurementRepository, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}
	return &SQLiteMeasurementRepository{
		db:    db,
		table: table,
		query: buildMeasurementQuery(table, "?"),
	}, nil
}

// QueryKey identifies the filtered table query
func (r *SQLiteMeasurementRepository) QueryKey() string {
	return queryKey("sqlite", r.table)
}

// Ping checks database connectivity
func (r *SQLiteMeasurementRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return nil
}

// LoadMeasurements returns every row whose rate category is not "no value"
func (r *SQLiteMeasurementRepository) LoadMeasurements(ctx context.Context) ([]models.Measurement, error) {
	rows, err := r.db.QueryContext(ctx, r.query, models.NoValueCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query measurements: %w", ErrDataUnavailable, err)
	}
	defer rows.Close()

	measurements := make([]models.Measurement, 0)
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating measurement rows: %w", ErrDataUnavailable, err)
	}

	return measurements, nil
}
