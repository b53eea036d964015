// Package cycles abstracts the tick counter used to time kernel runs.
//
// A Source yields monotonically non-decreasing readings of an elapsed-tick
// counter. Platforms without a usable counter are represented by the Null
// source, which returns the sentinel reading 0 on every call and reports
// itself unsupported; measurements taken through it must be flagged as
// unavailable rather than reported as real zero-duration timings.
package cycles

import "time"

// Source samples an elapsed-tick counter.
type Source interface {
	// Sample returns the current counter reading. Readings from a supported
	// source never decrease. An unsupported source returns 0 on every call.
	Sample() uint64

	// Supported reports whether readings carry timing information.
	Supported() bool

	// Name identifies the backend (e.g. "monotonic", "none").
	Name() string
}

// Best returns the preferred source for the current platform, chosen at
// initialization time rather than per call. The Go runtime guarantees a
// monotonic clock on every supported target, so this is currently always a
// monotonic source; Null remains available as the explicit fallback.
func Best() Source {
	return Monotonic()
}

// Measure samples src around fn and returns the elapsed ticks.
//
// The reliable flag is false when the source is unsupported or the counter
// did not advance; such readings must not be used to compute speedup ratios.
func Measure(src Source, fn func()) (elapsed uint64, reliable bool) {
	before := src.Sample()
	fn()
	after := src.Sample()

	return after - before, src.Supported() && after > before
}

// Speedup returns baseline/test as a ratio. The ok flag is false when either
// count is zero (sentinel or degenerate reading); no ratio is produced in
// that case, so unreliable timing is never misreported as 1.00x or NaN.
func Speedup(baseline, test uint64) (ratio float64, ok bool) {
	if baseline == 0 || test == 0 {
		return 0, false
	}
	return float64(baseline) / float64(test), true
}

// monotonicSource counts nanoseconds of the runtime monotonic clock since
// the source was created.
type monotonicSource struct {
	base time.Time
}

// Monotonic returns a source backed by the runtime monotonic clock.
// Ticks are nanoseconds elapsed since the source was created.
func Monotonic() Source {
	return &monotonicSource{base: time.Now()}
}

func (s *monotonicSource) Sample() uint64 {
	return uint64(time.Since(s.base))
}

func (s *monotonicSource) Supported() bool { return true }

func (s *monotonicSource) Name() string { return "monotonic" }

// nullSource is the sentinel fallback for targets without a usable counter.
type nullSource struct{}

// Null returns the sentinel source: every reading is 0 and Supported
// reports false.
func Null() Source {
	return nullSource{}
}

func (nullSource) Sample() uint64 { return 0 }

func (nullSource) Supported() bool { return false }

func (nullSource) Name() string { return "none" }
