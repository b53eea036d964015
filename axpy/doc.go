// Package axpy provides a saturating Q15 fixed-point AXPY kernel:
//
//	dst[i] = sat(a[i] + (alpha*b[i])>>15)
//
// The product is computed in a 32-bit accumulator, the shift is arithmetic
// (it rounds toward negative infinity, so (-1)>>15 == -1), and the final sum
// is clamped to the Q15 range instead of wrapping.
//
// # Implementation variants
//
// Several execution strategies implement the same kernel:
//
//   - scalar: plain loop, the bit-exact reference
//   - block: 8-way unrolled block processing
//   - parallel: goroutine fan-out over index ranges
//
// All variants are guaranteed to produce identical output at every index for
// identical inputs; the equivalence is a correctness contract, not just a
// performance goal, and is enforced by the package tests. [Compute] selects
// the best registered variant for the current CPU automatically;
// [ComputeWith] runs a specific variant by name.
//
// # Verification
//
// [Compare] scans two output vectors and reports the first index of
// divergence together with both values, which is the intended way to detect
// a broken alternate implementation:
//
//	ref := make([]q15.Sample, n)
//	out := make([]q15.Sample, n)
//	axpy.Baseline(ref, a, b, alpha)
//	axpy.Compute(out, a, b, alpha)
//	cmp, err := axpy.Compare(ref, out)
//
// Kernels panic on slice length mismatch; mismatched lengths are a caller
// contract violation, not a runtime-reported error.
package axpy
