package block

import "github.com/cwbudde/algo-q15/q15"

// width is the unroll factor. Eight int16 lanes match a 128-bit register,
// which is what a compiler-friendly straight-line block wants to look like.
const width = 8

// Axpy computes dst[i] = sat(a[i] + (alpha*b[i])>>15) in unrolled blocks of
// eight elements with a scalar tail. Slices must have equal length. Panics
// if lengths differ.
//
// Element arithmetic is identical to the scalar variant, so results are
// bit-exact regardless of how iterations are grouped.
func Axpy(dst, a, b []q15.Sample, alpha q15.Sample) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}

	wideAlpha := int32(alpha)
	n := len(dst)

	i := 0
	for ; i+width <= n; i += width {
		d := dst[i : i+width : i+width]
		x := a[i : i+width : i+width]
		y := b[i : i+width : i+width]

		d[0] = q15.Saturate(int32(x[0]) + (wideAlpha*int32(y[0]))>>15)
		d[1] = q15.Saturate(int32(x[1]) + (wideAlpha*int32(y[1]))>>15)
		d[2] = q15.Saturate(int32(x[2]) + (wideAlpha*int32(y[2]))>>15)
		d[3] = q15.Saturate(int32(x[3]) + (wideAlpha*int32(y[3]))>>15)
		d[4] = q15.Saturate(int32(x[4]) + (wideAlpha*int32(y[4]))>>15)
		d[5] = q15.Saturate(int32(x[5]) + (wideAlpha*int32(y[5]))>>15)
		d[6] = q15.Saturate(int32(x[6]) + (wideAlpha*int32(y[6]))>>15)
		d[7] = q15.Saturate(int32(x[7]) + (wideAlpha*int32(y[7]))>>15)
	}

	for ; i < n; i++ {
		dst[i] = q15.Saturate(int32(a[i]) + (wideAlpha*int32(b[i]))>>15)
	}
}
