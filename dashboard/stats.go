package dashboard

import (
	"sort"

	"github.com/wifi-on-ice/dashboard/models"
)

type routeAccumulator struct {
	dataRate        welfordState
	devices         welfordState
	seconds         float64
	maxDisruption   float64
	categorySeconds map[string]float64
}

// RouteStatistics summarizes each route present in rows, ordered by route name
func RouteStatistics(rows []models.Measurement) []models.RouteStats {
	accumulators := make(map[string]*routeAccumulator)
	for _, row := range rows {
		acc, ok := accumulators[row.Route]
		if !ok {
			acc = &routeAccumulator{categorySeconds: make(map[string]float64)}
			accumulators[row.Route] = acc
		}

		acc.dataRate.update(row.DataRatePerDevice)
		acc.devices.update(float64(row.DevicesAuthenticated))
		acc.seconds += row.TimeDiffSeconds
		acc.categorySeconds[row.RateCategory] += row.TimeDiffSeconds
		if acc.dataRate.count == 1 || row.Disruption > acc.maxDisruption {
			acc.maxDisruption = row.Disruption
		}
	}

	stats := make([]models.RouteStats, 0, len(accumulators))
	for route, acc := range accumulators {
		category, seconds := dominantCategory(acc.categorySeconds)
		stats = append(stats, models.RouteStats{
			Route:            route,
			Samples:          acc.dataRate.count,
			TotalMinutes:     acc.seconds / 60,
			MeanDataRate:     acc.dataRate.mean,
			StdDevDataRate:   acc.dataRate.stdDev(),
			MeanDevices:      acc.devices.mean,
			MaxDisruption:    acc.maxDisruption,
			DominantCategory: category,
			DominantMinutes:  seconds / 60,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Route < stats[j].Route
	})
	return stats
}

// dominantCategory picks the category with the most seconds; ties go to the
// slower tier
func dominantCategory(categorySeconds map[string]float64) (string, float64) {
	rank := make(map[string]int)
	for i, tier := range models.RateTiers() {
		rank[tier.Category] = i
	}

	best := ""
	bestSeconds := -1.0
	for category, seconds := range categorySeconds {
		switch {
		case seconds > bestSeconds:
		case seconds == bestSeconds && lowerTier(category, best, rank):
		default:
			continue
		}
		best = category
		bestSeconds = seconds
	}
	if bestSeconds < 0 {
		return "", 0
	}
	return best, bestSeconds
}

func lowerTier(a, b string, rank map[string]int) bool {
	ra, aKnown := rank[a]
	rb, bKnown := rank[b]
	if aKnown && bKnown {
		return ra < rb
	}
	if aKnown != bKnown {
		return aKnown
	}
	return a < b
}
