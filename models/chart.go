package models

// ChartSpec describes the horizontal stacked activity bar chart.
// Field names reference ActivitySummary JSON keys.
type ChartSpec struct {
	Title         string            `json:"title"`
	Orientation   string            `json:"orientation"`
	X             string            `json:"x"`
	Y             string            `json:"y"`
	Color         string            `json:"color"`
	Rows          []ActivitySummary `json:"rows"`
	CategoryOrder []string          `json:"categoryOrder"`
	ColorMap      map[string]string `json:"colorMap"`
	Labels        map[string]string `json:"labels"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	TotalMinutes  float64           `json:"totalMinutes"`
}

// View is the result of one full render pass for a route and layer selection
type View struct {
	RenderID   string        `json:"renderId"`
	Routes     []string      `json:"routes"`
	RowCount   int           `json:"rowCount"`
	Activities ChartSpec     `json:"activities"`
	Toggles    []LayerToggle `json:"toggles"`
	Map        *MapSpec      `json:"map"`             // nil when no layer is enabled
	Error      string        `json:"error,omitempty"` // user-facing prompt when Map is nil
}
