package dashboard

import "github.com/wifi-on-ice/dashboard/models"

// DefaultRoutes is the route preset shown before the user picks any routes
func DefaultRoutes() []string {
	return []string{
		"Berlin Südkreuz (Vorortbahn) -> München-Laim Pbf",
		"Berlin Hauptbahnhof - Lehrter Bf S-Bahn -> Köln Bbf",
		"Berlin Südende -> Hamburg-Altona",
		"Berlin Südkreuz (Vorortbahn) -> Hildesheim Hbf",
	}
}

// FilterRoutes returns the rows whose route is in selected, preserving order.
// An empty selection yields an empty, non-nil slice.
func FilterRoutes(rows []models.Measurement, selected []string) []models.Measurement {
	filtered := make([]models.Measurement, 0)
	if len(selected) == 0 {
		return filtered
	}

	wanted := make(map[string]struct{}, len(selected))
	for _, route := range selected {
		wanted[route] = struct{}{}
	}

	for _, row := range rows {
		if _, ok := wanted[row.Route]; ok {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
