package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-q15/q15"
)

// DeterministicNoise generates uniform Q15 noise over the full sample range
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, length int) []q15.Sample {
	out := make([]q15.Sample, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = q15.Sample(rng.Intn(65536) - 32768)
	}
	return out
}

// DeterministicSine generates a quantized sine wave at the given normalized
// frequency (cycles per sample) and peak amplitude in [0, 1].
func DeterministicSine(freq, amplitude float64, length int) []q15.Sample {
	out := make([]q15.Sample, length)
	step := 2 * math.Pi * freq
	for i := range out {
		out[i] = q15.FromFloat64(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value q15.Sample, length int) []q15.Sample {
	out := make([]q15.Sample, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates a signal sweeping linearly across the full Q15 range.
func Ramp(length int) []q15.Sample {
	out := make([]q15.Sample, length)
	if length == 0 {
		return out
	}
	span := float64(int32(q15.MaxSample) - int32(q15.MinSample))
	for i := range out {
		frac := float64(i) / float64(length)
		out[i] = q15.Sample(int32(q15.MinSample) + int32(frac*span))
	}
	return out
}
