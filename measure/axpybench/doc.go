// Package axpybench benchmarks and verifies the Q15 AXPY kernel variants.
//
// A run generates deterministic input vectors from an explicitly seeded
// generator, executes every registered kernel variant timed through a
// cycles.Source, verifies each output bit-exactly against the scalar
// baseline, and computes guarded speedup ratios. Timing taken through an
// unsupported source is reported as unavailable, never as a ratio.
//
// Beyond the bit-exact contract the package also quantifies fixed-point
// quality: the Q15 result is compared against an unquantized float64
// reference to obtain a signal-to-noise ratio, and for sine stimuli the
// spectrum of the quantization error is analyzed for its peak bin.
//
// Typical use:
//
//	cfg := axpybench.DefaultConfig()
//	report, err := axpybench.Run(cfg, cycles.Best())
package axpybench
