package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wifi-on-ice/dashboard/models"
)

// PostgresMeasurementRepository loads measurements from a PostgreSQL table
type PostgresMeasurementRepository struct {
	pool  *pgxpool.Pool
	table string
	query string
}

// NewPostgresMeasurementRepository connects to databaseURL and reads from table
func NewPostgresMeasurementRepository(ctx context.Context, databaseURL, table string) (*PostgresMeasurementRepository, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create connection pool: %w", ErrDataUnavailable, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", ErrDataUnavailable, err)
	}

	return &PostgresMeasurementRepository{
		pool:  pool,
		table: table,
		query: buildMeasurementQuery(table, "$1"),
	}, nil
}

// Close closes the connection pool
func (r *PostgresMeasurementRepository) Close() {
	r.pool.Close()
}

// QueryKey identifies the filtered table query
func (r *PostgresMeasurementRepository) QueryKey() string {
	return queryKey("postgres", r.table)
}

// Ping checks database connectivity
func (r *PostgresMeasurementRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return nil
}

// LoadMeasurements returns every row whose rate category is not "no value"
func (r *PostgresMeasurementRepository) LoadMeasurements(ctx context.Context) ([]models.Measurement, error) {
	rows, err := r.pool.Query(ctx, r.query, models.NoValueCategory)
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
