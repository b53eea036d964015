// Package ticks summarizes repeated tick-count measurements.
//
// A single kernel timing is noisy; benchmark drivers sample the same
// invocation several times and reduce the readings. Min is the customary
// estimate of the true cost (least interference), the spread indicates
// how disturbed the run was.
package ticks

import (
	"math"
	"sort"
)

// Stats summarizes a set of tick readings.
type Stats struct {
	Runs   int
	Min    uint64
	Max    uint64
	Mean   float64
	Median float64
	StdDev float64
}

// Calculate reduces the given readings. An empty input yields zero stats.
func Calculate(samples []uint64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sorted := append([]uint64(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum float64
	for _, s := range sorted {
		sum += float64(s)
	}
	mean := sum / float64(len(sorted))

	var sqDev float64
	for _, s := range sorted {
		d := float64(s) - mean
		sqDev += d * d
	}

	mid := len(sorted) / 2
	median := float64(sorted[mid])
	if len(sorted)%2 == 0 {
		median = (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
	}

	return Stats{
		Runs:   len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(sqDev / float64(len(sorted))),
	}
}
