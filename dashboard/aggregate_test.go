package dashboard

import (
	"math"
	"testing"

	"github.com/wifi-on-ice/dashboard/models"
)

func TestAggregateActivities(t *testing.T) {
	got := AggregateActivities(FilterRoutes(twoRouteTable(), []string{routeA}))

	want := []models.ActivitySummary{
		{Activity: models.ActivityText, Minutes: 5, Color: "#FF2B2B", Known: true},
		{Activity: models.ActivityHDVideo, Minutes: 5, Color: "#8661CC", Known: true},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d summaries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAggregateActivities_ConservesDuration(t *testing.T) {
	tables := map[string][]models.Measurement{
		"two routes": twoRouteTable(),
		"route A":    FilterRoutes(twoRouteTable(), []string{routeA}),
		"empty":      {},
	}

	for name, rows := range tables {
		t.Run(name, func(t *testing.T) {
			seconds := 0.0
			labels := make(map[string]bool)
			for _, r := range rows {
				seconds += r.TimeDiffSeconds
				labels[r.Activity] = true
			}

			summaries := AggregateActivities(rows)
			minutes := 0.0
			for _, s := range summaries {
				minutes += s.Minutes
				if s.Group != 0 {
					t.Errorf("Group = %d, want 0", s.Group)
				}
			}

			if math.Abs(minutes-seconds/60) > 1e-9 {
				t.Errorf("sum of minutes = %v, want %v", minutes, seconds/60)
			}
			if len(summaries) > len(labels) {
				t.Errorf("%d summaries for %d distinct labels", len(summaries), len(labels))
			}
		})
	}
}

func TestAggregateActivities_Order(t *testing.T) {
	rows := []models.Measurement{
		{Route: routeA, Activity: models.ActivityBulkData, TimeDiffSeconds: 60},
		{Route: routeA, Activity: "Satellite uplink", TimeDiffSeconds: 60},
		{Route: routeA, Activity: models.ActivityText, TimeDiffSeconds: 60},
		{Route: routeA, Activity: "Offline", TimeDiffSeconds: 60},
		{Route: routeA, Activity: models.Activity4KVideo, TimeDiffSeconds: 60},
	}

	got := AggregateActivities(rows)
	wantOrder := []string{
		models.ActivityText,
		models.Activity4KVideo,
		models.ActivityBulkData,
		"Offline",
		"Satellite uplink",
	}

	for i, activity := range wantOrder {
		if got[i].Activity != activity {
			t.Errorf("position %d = %q, want %q", i, got[i].Activity, activity)
		}
	}

	for _, s := range got[3:] {
		if s.Known || s.Color != "" {
			t.Errorf("unmapped label %q should have Known=false and no color, got %+v", s.Activity, s)
		}
	}
}

func TestBuildActivityChart(t *testing.T) {
	chart := BuildActivityChart(twoRouteTable())

	if chart.Orientation != "h" {
		t.Errorf("Orientation = %q, want h", chart.Orientation)
	}
	if chart.X != "TIME_DIFF" || chart.Y != "GROUP" || chart.Color != "DATARATE_PAX_ACTIVITY" {
		t.Errorf("unexpected axis fields: x=%s y=%s color=%s", chart.X, chart.Y, chart.Color)
	}
	if chart.TotalMinutes != 15 {
		t.Errorf("TotalMinutes = %v, want 15", chart.TotalMinutes)
	}
	if len(chart.CategoryOrder) != 5 {
		t.Errorf("CategoryOrder has %d entries, want 5", len(chart.CategoryOrder))
	}
	if chart.ColorMap[models.ActivityNoValue] != "#FFFFFF" {
		t.Error("ColorMap should carry the no value fallback")
	}

	empty := BuildActivityChart(nil)
	if empty.Rows == nil || len(empty.Rows) != 0 {
		t.Errorf("empty chart rows = %v, want empty slice", empty.Rows)
	}
}
