package dashboard

import "github.com/wifi-on-ice/dashboard/models"

const (
	routeA = "Berlin Südende -> Hamburg-Altona"
	routeB = "Berlin Hauptbahnhof - Lehrter Bf S-Bahn -> Köln Bbf"
)

func sample(route string, lat, lon float64, seconds float64, devices int, rate float64, category, activity, color string) models.Measurement {
	m := models.Measurement{
		Route:                route,
		Latitude:             lat,
		Longitude:            lon,
		PrevLatitude:         lat - 0.05,
		PrevLongitude:        lon - 0.05,
		TimeDiffSeconds:      seconds,
		DevicesAuthenticated: devices,
		DataRatePerDevice:    rate,
		RateCategory:         category,
		Activity:             activity,
		Disruption:           rate / 100,
		ColorHex:             color,
	}
	if err := m.DecodeColor(); err != nil {
		panic(err)
	}
	return m
}

// twoRouteTable has route A with text and HD video samples and route B with
// music and bulk transfer samples, interleaved
func twoRouteTable() []models.Measurement {
	return []models.Measurement{
		sample(routeA, 52.45, 13.35, 120, 40, 3.2, models.RateVeryLow, models.ActivityText, "#FF2B2B"),
		sample(routeB, 52.52, 13.37, 60, 80, 7.0, models.RateLow, models.ActivityMusic, "#FF8C3A"),
		sample(routeA, 52.80, 12.90, 300, 35, 14.5, models.RateMedium, models.ActivityHDVideo, "#8661CC"),
		sample(routeB, 52.10, 11.60, 240, 75, 70.0, models.RateVeryFast, models.ActivityBulkData, "#4EC273"),
		sample(routeA, 53.30, 10.40, 180, 30, 4.8, models.RateVeryLow, models.ActivityText, "#FF2B2B"),
	}
}
