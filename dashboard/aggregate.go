package dashboard

import (
	"sort"

	"github.com/wifi-on-ice/dashboard/models"
)

// AggregateActivities sums the time spent per activity label, in minutes.
// Rows come out in the chart's category order; labels outside the static
// mapping follow alphabetically with Known=false and no color.
func AggregateActivities(rows []models.Measurement) []models.ActivitySummary {
	seconds := make(map[string]float64)
	for _, row := range rows {
		seconds[row.Activity] += row.TimeDiffSeconds
	}

	colors := models.ActivityColors()
	rank := make(map[string]int)
	for i, activity := range models.ActivityOrder() {
		rank[activity] = i
	}

	summaries := make([]models.ActivitySummary, 0, len(seconds))
	for activity, total := range seconds {
		color, known := colors[activity]
		summaries = append(summaries, models.ActivitySummary{
			Activity: activity,
			Minutes:  total / 60,
			Group:    0,
			Color:    color,
			Known:    known,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		ri, iKnown := rank[summaries[i].Activity]
		rj, jKnown := rank[summaries[j].Activity]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return summaries[i].Activity < summaries[j].Activity
		}
	})

	return summaries
}

// BuildActivityChart wraps the aggregated rows with the static chart layout
func BuildActivityChart(rows []models.Measurement) models.ChartSpec {
	summaries := AggregateActivities(rows)

	total := 0.0
	for _, s := range summaries {
		total += s.Minutes
	}

	return models.ChartSpec{
		Title:         "Activities summed in minutes",
		Orientation:   "h",
		X:             "TIME_DIFF",
		Y:             "GROUP",
		Color:         "DATARATE_PAX_ACTIVITY",
		Rows:          summaries,
		CategoryOrder: models.ActivityOrder(),
		ColorMap:      models.ActivityColors(),
		Labels: map[string]string{
			"DATARATE_PAX_ACTIVITY": "Activites",
			"TIME_DIFF":             "Minutes",
		},
		Width:        700,
		Height:       320,
		TotalMinutes: total,
	}
}
