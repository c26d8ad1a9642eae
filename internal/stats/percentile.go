// Package stats has small helpers for summarizing metric series on the
// dashboard.
package stats

import (
	"math"
	"sort"
)

// Quantile calculates the q-th quantile (0-1) with linear interpolation
// between closest ranks.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := q * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	// Linear interpolation
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Percentile calculates the p-th percentile (0-100).
func Percentile(values []float64, p float64) float64 {
	return Quantile(values, p/100.0)
}
