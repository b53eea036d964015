package scalar

import "github.com/cwbudde/algo-q15/q15"

// Axpy computes dst[i] = sat(a[i] + (alpha*b[i])>>15) with a plain loop.
// Slices must have equal length. Panics if lengths differ.
// This is the bit-exact reference implementation for all other variants.
func Axpy(dst, a, b []q15.Sample, alpha q15.Sample) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	wideAlpha := int32(alpha)
	for i := range dst {
		// The shift is arithmetic: scaling rounds toward negative infinity.
		scaled := (wideAlpha * int32(b[i])) >> 15
		dst[i] = q15.Saturate(int32(a[i]) + scaled)
	}
}
