package dashboard

import "math"

// welfordState holds running statistics using Welford's online algorithm.
// Mean and standard deviation are updated in O(1) per observation without
// keeping the observations around.
type welfordState struct {
	count int
	mean  float64
	m2    float64 // sum of squared differences from the mean
}

// update adds one observation
func (w *welfordState) update(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (value - w.mean)
}

// stdDev returns the population standard deviation, 0 below two observations
func (w *welfordState) stdDev() float64 {
	if w.count < 2 {
		return 0
	}
	return math.Sqrt(w.m2 / float64(w.count))
}
