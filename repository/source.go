package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/wifi-on-ice/dashboard/models"
)

// ErrDataUnavailable is returned when the measurement store cannot be queried.
// Callers never receive a partial table alongside it.
var ErrDataUnavailable = errors.New("measurement data unavailable")

// MeasurementStore loads the measurement table with "no value" rows excluded
type MeasurementStore interface {
	LoadMeasurements(ctx context.Context) ([]models.Measurement, error)
	Ping(ctx context.Context) error
	// QueryKey identifies the query a store runs, for caching
	QueryKey() string
}

// measurementColumns is the select list shared by every store, in scan order
var measurementColumns = []string{
	"ROUTE",
	"GPS_BREITE",
	"GPS_LAENGE",
	"GPS_BREITE_LAGGED",
	"GPS_LAENGE_LAGGED",
	"TIME_DIFF",
	"PAX_AUTH",
	"DATARATE_PAX",
	"DATARATE_PAX_CATEGORY",
	"DATARATE_PAX_ACTIVITY",
	"WLAN_DISRUPTION",
	"DATARATE_PAX_COLOR",
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// validateTableName rejects anything that is not a plain, optionally
// schema-qualified identifier
func validateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("invalid table name: %q", table)
	}
	return nil
}

// quoteIdent quotes each part of a dotted identifier
func quoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = `"` + part + `"`
	}
	return strings.Join(parts, ".")
}

// buildMeasurementQuery returns the select statement with one placeholder
// for the excluded rate category
func buildMeasurementQuery(table, placeholder string) string {
	quoted := make([]string, len(measurementColumns))
	for i, col := range measurementColumns {
		quoted[i] = quoteIdent(col)
	}
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s <> %s ORDER BY %s",
		strings.Join(quoted, ", "),
		quoteIdent(table),
		quoteIdent("DATARATE_PAX_CATEGORY"),
		placeholder,
		quoteIdent("ID"),
	)
}

func queryKey(driver, table string) string {
	return fmt.Sprintf("%s:%s:DATARATE_PAX_CATEGORY<>%s", driver, table, models.NoValueCategory)
}

// rowScanner is satisfied by *sql.Rows and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMeasurement reads one row and decodes its color
func scanMeasurement(rows rowScanner) (models.Measurement, error) {
	var m models.Measurement
	err := rows.Scan(
		&m.Route,
		&m.Latitude,
		&m.Longitude,
		&m.PrevLatitude,
		&m.PrevLongitude,
		&m.TimeDiffSeconds,
		&m.DevicesAuthenticated,
		&m.DataRatePerDevice,
		&m.RateCategory,
		&m.Activity,
		&m.Disruption,
		&m.ColorHex,
	)
	if err != nil {
		return m, fmt.Errorf("%w: failed to scan measurement row: %w", ErrDataUnavailable, err)
	}

	if err := m.DecodeColor(); err != nil {
		return m, fmt.Errorf("route %q: %w", m.Route, err)
	}
	return m, nil
}

// ListRoutes returns the distinct route names of the table, sorted
func ListRoutes(table []models.Measurement) []string {
	seen := make(map[string]struct{})
	routes := make([]string, 0)
	for _, m := range table {
		if _, ok := seen[m.Route]; ok {
			continue
		}
		seen[m.Route] = struct{}{}
		routes = append(routes, m.Route)
	}
	sort.Strings(routes)
	return routes
}
