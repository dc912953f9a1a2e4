package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/wifi-on-ice/dashboard/dashboard"
	"github.com/wifi-on-ice/dashboard/models"
	"github.com/wifi-on-ice/dashboard/repository"
)

// MeasurementSource provides the memoized measurement table
type MeasurementSource interface {
	Table(ctx context.Context) ([]models.Measurement, error)
	Ping(ctx context.Context) error
	Invalidate()
}

// DashboardHandler serves the derived dashboard data
type DashboardHandler struct {
	source  MeasurementSource
	timeout time.Duration
}

// NewDashboardHandler creates a new handler reading from source
func NewDashboardHandler(source MeasurementSource, timeout time.Duration) *DashboardHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DashboardHandler{source: source, timeout: timeout}
}

// RoutesResponse is the JSON response for GET /api/routes
type RoutesResponse struct {
	Routes   []string `json:"routes"`
	Defaults []string `json:"defaults"`
	Count    int      `json:"count"`
}

// RouteStatsResponse is the JSON response for GET /api/routes/stats
type RouteStatsResponse struct {
	Stats       []models.RouteStats `json:"stats"`
	Count       int                 `json:"count"`
	LastChecked time.Time           `json:"lastChecked"`
}

// ParseSelection reads the route and layer selection from query parameters.
// A missing "route" parameter selects the default routes and a missing "layer"
// parameter enables every layer; an empty value ("route=") selects nothing.
func ParseSelection(query url.Values) dashboard.Selection {
	sel := dashboard.DefaultSelection()

	if values, ok := query["route"]; ok {
		sel.Routes = nonEmpty(values)
	}
	if values, ok := query["layer"]; ok {
		sel.Layers = nonEmpty(values)
	}
	return sel
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// GetRoutes handles GET /api/routes
// Returns every route of the source table for the route multiselect
func (h *DashboardHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	table, err := h.source.Table(ctx)
	if err != nil {
		writeSourceError(w, err)
		return
	}

	routes := repository.ListRoutes(table)
	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, RoutesResponse{
		Routes:   routes,
		Defaults: dashboard.DefaultRoutes(),
		Count:    len(routes),
	})
}

// GetDashboard handles GET /api/dashboard
// Query params: route (repeatable), layer (repeatable)
// Runs one render pass and returns the chart and map specifications
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	table, err := h.source.Table(ctx)
	if err != nil {
		writeSourceError(w, err)
		return
	}

	view := dashboard.Render(table, ParseSelection(r.URL.Query()))
	writeJSON(w, http.StatusOK, view)
}

// GetRouteStats handles GET /api/routes/stats
// Query params: route (repeatable, defaults to the preset routes)
func (h *DashboardHandler) GetRouteStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	table, err := h.source.Table(ctx)
	if err != nil {
		writeSourceError(w, err)
		return
	}

	sel := ParseSelection(r.URL.Query())
	stats := dashboard.RouteStatistics(dashboard.FilterRoutes(table, sel.Routes))
	writeJSON(w, http.StatusOK, RouteStatsResponse{
		Stats:       stats,
		Count:       len(stats),
		LastChecked: time.Now().UTC(),
	})
}

// InvalidateCache handles POST /api/cache/invalidate
func (h *DashboardHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.source.Invalidate()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "invalidated",
		"invalidatedAt": time.Now().UTC(),
	})
}
