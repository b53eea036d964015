package q15

import "math"

// Sample is a signed 16-bit fixed-point value with 15 fractional bits,
// representing [-1.0, 1.0) at a scale of 1/32768. The integer bit pattern
// is the value; there is no implicit normalization.
type Sample int16

// Q15 range limits.
const (
	MinSample Sample = math.MinInt16
	MaxSample Sample = math.MaxInt16
)

// scale is the Q15 scaling factor 2^15.
const scale = 32768.0

// Saturate clamps a wide accumulator value to the Q15 range and narrows it.
// It is total over int32: any product of two Q15 values plus a widened Q15
// term fits in int32 without overflow.
func Saturate(v int32) Sample {
	if v > int32(MaxSample) {
		return MaxSample
	}
	if v < int32(MinSample) {
		return MinSample
	}
	return Sample(v)
}

// FromFloat64 converts a real value in [-1.0, 1.0) to Q15, rounding to
// nearest and clamping out-of-range inputs to the representable limits.
func FromFloat64(x float64) Sample {
	v := math.Round(x * scale)
	if v > float64(MaxSample) {
		return MaxSample
	}
	if v < float64(MinSample) {
		return MinSample
	}
	return Sample(v)
}

// Float64 returns the real value represented by the sample.
func (s Sample) Float64() float64 {
	return float64(s) / scale
}

// ToFloat64 converts src into dst as real values.
// Slices must have equal length. Panics if lengths differ.
func ToFloat64(dst []float64, src []Sample) {
	if len(dst) != len(src) {
		panic("q15: slice length mismatch")
	}
	for i, s := range src {
		dst[i] = s.Float64()
	}
}

// Quantize converts src real values into dst samples, rounding and clamping
// each element like FromFloat64. Slices must have equal length. Panics if
// lengths differ.
func Quantize(dst []Sample, src []float64) {
	if len(dst) != len(src) {
		panic("q15: slice length mismatch")
	}
	for i, x := range src {
		dst[i] = FromFloat64(x)
	}
}
