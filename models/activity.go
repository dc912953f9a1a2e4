package models

// Surf speed tiers for DATARATE_PAX_CATEGORY, slowest first
const (
	RateVeryLow  = "very low surf speed"
	RateLow      = "low surf speed"
	RateMedium   = "medium surf speed"
	RateFast     = "fast surf speed"
	RateVeryFast = "very fast surf speed"
)

// Internet activities enabled at each surf speed tier
const (
	ActivityText     = "Text communication (emails, chats), web browsing (text)"
	ActivityMusic    = "Music streaming, web browsing (images), online document editing"
	ActivityHDVideo  = "HD video streaming, video calls, web browsing (images and videos)"
	Activity4KVideo  = "4K video streaming, online gaming"
	ActivityBulkData = "Large scale data transfers"
	ActivityNoValue  = NoValueCategory
)

// RateTier describes one surf speed bucket
type RateTier struct {
	Category string `json:"category"`
	Activity string `json:"activity"`
	MinMbit  int    `json:"minMbit"`
	MaxMbit  *int   `json:"maxMbit,omitempty"` // nil for the open-ended top tier
	Color    string `json:"color"`
}

func intPtr(v int) *int { return &v }

// RateTiers returns the five tiers in ascending order of speed
func RateTiers() []RateTier {
	return []RateTier{
		{Category: RateVeryLow, Activity: ActivityText, MinMbit: 0, MaxMbit: intPtr(5), Color: "#FF2B2B"},
		{Category: RateLow, Activity: ActivityMusic, MinMbit: 5, MaxMbit: intPtr(10), Color: "#FF8C3A"},
		{Category: RateMedium, Activity: ActivityHDVideo, MinMbit: 10, MaxMbit: intPtr(25), Color: "#8661CC"},
		{Category: RateFast, Activity: Activity4KVideo, MinMbit: 25, MaxMbit: intPtr(60), Color: "#418FD8"},
		{Category: RateVeryFast, Activity: ActivityBulkData, MinMbit: 60, Color: "#4EC273"},
	}
}

// ActivityOrder is the fixed category order of the activity chart
func ActivityOrder() []string {
	tiers := RateTiers()
	order := make([]string, 0, len(tiers))
	for _, t := range tiers {
		order = append(order, t.Activity)
	}
	return order
}

// ActivityColors maps each activity label to its chart color, including the
// "no value" fallback
func ActivityColors() map[string]string {
	colors := make(map[string]string, 6)
	for _, t := range RateTiers() {
		colors[t.Activity] = t.Color
	}
	colors[ActivityNoValue] = "#FFFFFF"
	return colors
}

// ActivitySummary is the time spent in one activity across the selected routes
type ActivitySummary struct {
	Activity string  `json:"DATARATE_PAX_ACTIVITY"`
	Minutes  float64 `json:"TIME_DIFF"`
	// Group is a constant key that stacks all bars on a single axis
	Group int    `json:"GROUP"`
	Color string `json:"color,omitempty"`
	Known bool   `json:"known"` // false when the label has no entry in ActivityColors
}
