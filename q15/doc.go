// Package q15 provides the signed 16-bit fixed-point (Q15) sample type used
// throughout the module, together with saturation and float conversion
// helpers.
//
// A Q15 sample stores a real value in [-1.0, 1.0) at a scale of 1/32768.
// Intermediate arithmetic is performed in a wider accumulator (int32) and
// narrowed back with [Saturate], which clamps instead of wrapping:
//
//	y := q15.Saturate(int32(a) + (int32(alpha)*int32(b))>>15)
//
// The float conversion helpers exist for driver and analysis code; the
// kernels in package axpy operate on raw samples only.
package q15
