package ticks

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint64
		want    Stats
	}{
		{
			name:    "empty",
			samples: nil,
			want:    Stats{},
		},
		{
			name:    "single",
			samples: []uint64{100},
			want:    Stats{Runs: 1, Min: 100, Max: 100, Mean: 100, Median: 100, StdDev: 0},
		},
		{
			name:    "odd count",
			samples: []uint64{300, 100, 200},
			want:    Stats{Runs: 3, Min: 100, Max: 300, Mean: 200, Median: 200},
		},
		{
			name:    "even count",
			samples: []uint64{400, 100, 300, 200},
			want:    Stats{Runs: 4, Min: 100, Max: 400, Mean: 250, Median: 250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.samples)
			if got.Runs != tt.want.Runs || got.Min != tt.want.Min || got.Max != tt.want.Max {
				t.Errorf("Calculate = %+v, want %+v", got, tt.want)
			}
			if got.Mean != tt.want.Mean || got.Median != tt.want.Median {
				t.Errorf("Calculate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateStdDev(t *testing.T) {
	got := Calculate([]uint64{2, 4, 4, 4, 5, 5, 7, 9})
	if got.StdDev != 2 {
		t.Errorf("StdDev = %v, want 2", got.StdDev)
	}
}

func TestCalculateDoesNotMutateInput(t *testing.T) {
	samples := []uint64{3, 1, 2}
	Calculate(samples)
	if samples[0] != 3 || samples[1] != 1 || samples[2] != 2 {
		t.Errorf("input mutated: %v", samples)
	}
}

func TestCalculateLargeValues(t *testing.T) {
	got := Calculate([]uint64{math.MaxUint32, math.MaxUint32 + 2})
	if got.Min != math.MaxUint32 || got.Max != math.MaxUint32+2 {
		t.Errorf("Calculate = %+v", got)
	}
}
