package models

import (
	"errors"
)

// NoValueCategory is the rate category sentinel for samples without a usable data rate.
// Rows carrying it are excluded by the store query and never reach the dashboard.
const NoValueCategory = "no value"

// Measurement is one pre-aggregated Wi-Fi sample on a route, as stored in the
// wifi_on_ice table. Column names follow the Deutsche Bahn open data export.
type Measurement struct {
	Route string `db:"ROUTE" json:"ROUTE"`

	// Current position
	Latitude  float64 `db:"GPS_BREITE" json:"GPS_BREITE"`
	Longitude float64 `db:"GPS_LAENGE" json:"GPS_LAENGE"`

	// Position of the previous sample on the same route, used to draw segments
	PrevLatitude  float64 `db:"GPS_BREITE_LAGGED" json:"GPS_BREITE_LAGGED"`
	PrevLongitude float64 `db:"GPS_LAENGE_LAGGED" json:"GPS_LAENGE_LAGGED"`

	TimeDiffSeconds      float64 `db:"TIME_DIFF" json:"TIME_DIFF"`
	DevicesAuthenticated int     `db:"PAX_AUTH" json:"PAX_AUTH"`

	// Average data rate per device and its surf speed bucket
	DataRatePerDevice float64 `db:"DATARATE_PAX" json:"DATARATE_PAX"`
	RateCategory      string  `db:"DATARATE_PAX_CATEGORY" json:"DATARATE_PAX_CATEGORY"`
	Activity          string  `db:"DATARATE_PAX_ACTIVITY" json:"DATARATE_PAX_ACTIVITY"`

	Disruption float64 `db:"WLAN_DISRUPTION" json:"WLAN_DISRUPTION"`

	// ColorHex is the stored tier color; Color is decoded from it at load time
	ColorHex string `db:"DATARATE_PAX_COLOR" json:"-"`
	Color    RGB    `json:"DATARATE_PAX_COLOR"`
}

// Validate checks if the Measurement has usable values
func (m *Measurement) Validate() error {
	if m.Route == "" {
		return errors.New("route is required")
	}

	if m.Latitude < -90 || m.Latitude > 90 || m.PrevLatitude < -90 || m.PrevLatitude > 90 {
		return errors.New("latitude out of range: must be between -90 and 90")
	}
	if m.Longitude < -180 || m.Longitude > 180 || m.PrevLongitude < -180 || m.PrevLongitude > 180 {
		return errors.New("longitude out of range: must be between -180 and 180")
	}

	if m.TimeDiffSeconds < 0 {
		return errors.New("time diff must not be negative")
	}
	if m.DevicesAuthenticated < 0 {
		return errors.New("authenticated device count must not be negative")
	}

	if m.RateCategory == "" {
		return errors.New("rate category is required")
	}

	return nil
}

// DecodeColor fills Color from ColorHex
func (m *Measurement) DecodeColor() error {
	rgb, err := HexToRGB(m.ColorHex)
	if err != nil {
		return err
	}
	m.Color = rgb
	return nil
}
