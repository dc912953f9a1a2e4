package models

// LayerType is the deck.gl layer class a descriptor renders as
type LayerType string

const (
	LineLayerType   LayerType = "LineLayer"
	ColumnLayerType LayerType = "ColumnLayer"
	ArcLayerType    LayerType = "ArcLayer"
)

// Layer names double as the labels of the map layer toggles
const (
	LayerInternetSpeed   = "Internet Speed"
	LayerAmountDevices   = "Amount Devices"
	LayerWifiDisruptions = "Wifi Disruptions"
)

// LayerNames returns the layer names in render order
func LayerNames() []string {
	return []string{LayerInternetSpeed, LayerAmountDevices, LayerWifiDisruptions}
}

// Position references a (longitude, latitude) column pair
type Position [2]string

// Layer is a declarative map layer. It carries field references and constants only;
// exactly one of Line, Column or Arc is set, matching Type.
type Layer struct {
	ID            string        `json:"id"`
	Type          LayerType     `json:"type"`
	Name          string        `json:"name"`
	Data          []Measurement `json:"data"`
	Opacity       float64       `json:"opacity"`
	Pickable      bool          `json:"pickable"`
	AutoHighlight bool          `json:"autoHighlight"`

	Line   *LineMapping   `json:"line,omitempty"`
	Column *ColumnMapping `json:"column,omitempty"`
	Arc    *ArcMapping    `json:"arc,omitempty"`
}

// LineMapping draws one segment per row, colored by the decoded tier color
type LineMapping struct {
	SourcePosition Position `json:"getSourcePosition"`
	TargetPosition Position `json:"getTargetPosition"`
	ColorField     string   `json:"getColor"`
	Width          float64  `json:"getWidth"`
}

// ColumnMapping extrudes a column per row with height from ElevationField
type ColumnMapping struct {
	Position       Position `json:"getPosition"`
	ElevationField string   `json:"getElevation"`
	ElevationScale float64  `json:"elevationScale"`
	Extruded       bool     `json:"extruded"`
	Radius         float64  `json:"radius"`
	FillColor      RGB      `json:"getFillColor"`
}

// ArcMapping draws an arc per row with width WidthField*WidthScale
type ArcMapping struct {
	SourcePosition Position `json:"getSourcePosition"`
	TargetPosition Position `json:"getTargetPosition"`
	SourceColor    RGB      `json:"getSourceColor"`
	TargetColor    RGB      `json:"getTargetColor"`
	WidthField     string   `json:"widthField"`
	WidthScale     float64  `json:"widthScale"`
}

// ViewState is the initial map viewport
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
}

// Tooltip is an HTML template with {COLUMN} placeholders
type Tooltip struct {
	HTML string `json:"html"`
}

// MapSpec is everything the map widget needs for one render
type MapSpec struct {
	InitialViewState ViewState `json:"initialViewState"`
	Layers           []Layer   `json:"layers"`
	Tooltip          Tooltip   `json:"tooltip"`
}

// LayerToggle is the state of one layer checkbox
type LayerToggle struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
