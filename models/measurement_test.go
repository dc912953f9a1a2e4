package models

import (
	"errors"
	"testing"
)

func validMeasurement() Measurement {
	return Measurement{
		Route:                "Berlin Südende -> Hamburg-Altona",
		Latitude:             52.45,
		Longitude:            13.35,
		PrevLatitude:         52.40,
		PrevLongitude:        13.30,
		TimeDiffSeconds:      60,
		DevicesAuthenticated: 42,
		DataRatePerDevice:    7.5,
		RateCategory:         RateLow,
		Activity:             ActivityMusic,
		Disruption:           0.2,
		ColorHex:             "#FF8C3A",
	}
}

func TestMeasurementValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m *Measurement)
		wantError bool
	}{
		{name: "valid measurement", mutate: func(m *Measurement) {}},
		{name: "zero time diff", mutate: func(m *Measurement) { m.TimeDiffSeconds = 0 }},
		{name: "missing route", mutate: func(m *Measurement) { m.Route = "" }, wantError: true},
		{name: "latitude out of range", mutate: func(m *Measurement) { m.Latitude = 100 }, wantError: true},
		{name: "previous longitude out of range", mutate: func(m *Measurement) { m.PrevLongitude = -200 }, wantError: true},
		{name: "negative time diff", mutate: func(m *Measurement) { m.TimeDiffSeconds = -1 }, wantError: true},
		{name: "negative device count", mutate: func(m *Measurement) { m.DevicesAuthenticated = -3 }, wantError: true},
		{name: "missing rate category", mutate: func(m *Measurement) { m.RateCategory = "" }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeasurement()
			tt.mutate(&m)
			err := m.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestMeasurementDecodeColor(t *testing.T) {
	m := validMeasurement()
	if err := m.DecodeColor(); err != nil {
		t.Fatalf("DecodeColor failed: %v", err)
	}
	if m.Color != (RGB{255, 140, 58}) {
		t.Errorf("Color = %v, want [255 140 58]", m.Color)
	}

	m.ColorHex = "#ZZZZZZ"
	if err := m.DecodeColor(); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("DecodeColor error = %v, want ErrInvalidColorFormat", err)
	}
}
