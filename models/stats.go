package models

// RouteStats summarizes the Wi-Fi conditions measured on one route
type RouteStats struct {
	Route            string  `json:"route"`
	Samples          int     `json:"samples"`
	TotalMinutes     float64 `json:"totalMinutes"`
	MeanDataRate     float64 `json:"meanDataRate"`
	StdDevDataRate   float64 `json:"stdDevDataRate"`
	MeanDevices      float64 `json:"meanDevices"`
	MaxDisruption    float64 `json:"maxDisruption"`
	DominantCategory string  `json:"dominantCategory"` // rate category with the most minutes
	DominantMinutes  float64 `json:"dominantCategoryMinutes"`
}
