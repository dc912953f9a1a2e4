package dashboard

import (
	"errors"

	"github.com/google/uuid"

	"github.com/wifi-on-ice/dashboard/internal/metrics"
	"github.com/wifi-on-ice/dashboard/models"
)

// ErrNoLayersSelected means every map layer toggle is off
var ErrNoLayersSelected = errors.New("no map layer selected")

// NoLayersMessage is shown in place of the map when ErrNoLayersSelected occurs
const NoLayersMessage = "Please choose at least one layer above."

// Selection is the user input for one render pass
type Selection struct {
	Routes []string
	// Layers holds the names of enabled map layers; nil enables all of them
	Layers []string
}

// DefaultSelection is the initial page state: preset routes, every layer on
func DefaultSelection() Selection {
	return Selection{Routes: DefaultRoutes()}
}

// Toggles resolves the layer checkbox states for the selection
func (s Selection) Toggles() []models.LayerToggle {
	names := models.LayerNames()
	toggles := make([]models.LayerToggle, 0, len(names))

	enabled := make(map[string]bool, len(s.Layers))
	for _, name := range s.Layers {
		enabled[name] = true
	}

	for _, name := range names {
		toggles = append(toggles, models.LayerToggle{
			Name:    name,
			Enabled: s.Layers == nil || enabled[name],
		})
	}
	return toggles
}

// Render runs one full pass over the source table: route filter, activity
// aggregation, layer construction and layer toggling. The table is not modified.
func Render(table []models.Measurement, sel Selection) models.View {
	metrics.RenderPassesTotal.Inc()

	routes := sel.Routes
	if routes == nil {
		routes = []string{}
	}

	filtered := FilterRoutes(table, routes)
	toggles := sel.Toggles()

	view := models.View{
		RenderID:   uuid.NewString(),
		Routes:     routes,
		RowCount:   len(filtered),
		Activities: BuildActivityChart(filtered),
		Toggles:    toggles,
	}

	layers, err := SelectLayers(BuildLayers(filtered), toggles)
	if err != nil {
		metrics.NoLayersSelectedTotal.Inc()
		view.Error = NoLayersMessage
		return view
	}

	view.Map = &models.MapSpec{
		InitialViewState: InitialViewState(),
		Layers:           layers,
		Tooltip:          MapTooltip(),
	}
	return view
}

// SelectLayers keeps the layers whose toggle is enabled.
// Returns ErrNoLayersSelected when nothing is left to draw.
func SelectLayers(layers []models.Layer, toggles []models.LayerToggle) ([]models.Layer, error) {
	enabled := make(map[string]bool, len(toggles))
	for _, t := range toggles {
		enabled[t.Name] = t.Enabled
	}

	selected := make([]models.Layer, 0, len(layers))
	for _, layer := range layers {
		if enabled[layer.Name] {
			selected = append(selected, layer)
		}
	}

	if len(selected) == 0 {
		return nil, ErrNoLayersSelected
	}
	return selected, nil
}
