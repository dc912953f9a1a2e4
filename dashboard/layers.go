package dashboard

import "github.com/wifi-on-ice/dashboard/models"

// Column pairs used by every layer, (longitude, latitude) as deck.gl expects
var (
	currentPosition  = models.Position{"GPS_LAENGE", "GPS_BREITE"}
	previousPosition = models.Position{"GPS_LAENGE_LAGGED", "GPS_BREITE_LAGGED"}
)

const (
	lineWidth            = 5
	layerOpacity         = 0.5
	columnElevationScale = 150
	columnRadius         = 1750
	disruptionWidthScale = 15
)

// InitialViewState centers the map on Germany
func InitialViewState() models.ViewState {
	return models.ViewState{
		Latitude:  51.1642292,
		Longitude: 10.4541194,
		Zoom:      4.5,
		Pitch:     35.5,
	}
}

// MapTooltip renders the hovered row's data rate and device count
func MapTooltip() models.Tooltip {
	return models.Tooltip{
		HTML: "<b>Avergae Datarate: </b> {DATARATE_PAX} <br />" +
			"<b>Average Datarate per Device: </b> {DATARATE_PAX_CATEGORY} <br />" +
			"<b>Average Devices amount: </b>{PAX_AUTH} <br />",
	}
}

// BuildLayers returns the line, column and arc layers over rows, in that order.
// Empty input still yields all three layers with empty data.
func BuildLayers(rows []models.Measurement) []models.Layer {
	if rows == nil {
		rows = []models.Measurement{}
	}

	return []models.Layer{
		{
			ID:       "internet-speed",
			Type:     models.LineLayerType,
			Name:     models.LayerInternetSpeed,
			Data:     rows,
			Opacity:  layerOpacity,
			Pickable: true,
			Line: &models.LineMapping{
				SourcePosition: currentPosition,
				TargetPosition: previousPosition,
				ColorField:     "DATARATE_PAX_COLOR",
				Width:          lineWidth,
			},
		},
		{
			ID:            "amount-devices",
			Type:          models.ColumnLayerType,
			Name:          models.LayerAmountDevices,
			Data:          rows,
			Opacity:       1,
			AutoHighlight: true,
			Column: &models.ColumnMapping{
				Position:       currentPosition,
				ElevationField: "PAX_AUTH",
				ElevationScale: columnElevationScale,
				Extruded:       true,
				Radius:         columnRadius,
				FillColor:      models.RGB{0, 128, 255},
			},
		},
		{
			ID:       "wifi-disruptions",
			Type:     models.ArcLayerType,
			Name:     models.LayerWifiDisruptions,
			Data:     rows,
			Opacity:  layerOpacity,
			Pickable: true,
			Arc: &models.ArcMapping{
				SourcePosition: previousPosition,
				TargetPosition: currentPosition,
				SourceColor:    models.RGB{255, 0, 0},
				TargetColor:    models.RGB{255, 128, 0},
				WidthField:     "WLAN_DISRUPTION",
				WidthScale:     disruptionWidthScale,
			},
		},
	}
}
