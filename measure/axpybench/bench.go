package axpybench

import (
	"fmt"

	"github.com/cwbudde/algo-q15/axpy"
	"github.com/cwbudde/algo-q15/cycles"
	"github.com/cwbudde/algo-q15/q15"
	"github.com/cwbudde/algo-q15/stats/ticks"
)

// VariantResult holds the measurement and verification outcome of one
// kernel variant.
type VariantResult struct {
	// Name is the registered variant name.
	Name string

	// Comparison is the bit-exact check against the scalar baseline output.
	Comparison axpy.Comparison

	// Ticks is the best (minimum) reliable counter reading across runs.
	// Meaningful only when Reliable is true.
	Ticks uint64

	// Reliable reports whether at least one run produced a usable reading.
	Reliable bool

	// Stats summarizes the reliable readings when more than one run was
	// requested.
	Stats ticks.Stats

	// Speedup is baseline ticks divided by variant ticks. Valid only when
	// SpeedupOK is true; it is never synthesized from sentinel readings.
	Speedup   float64
	SpeedupOK bool
}

// Report holds the outcome of a benchmark run.
type Report struct {
	Config Config

	// Source names the tick counter backend used for timing.
	Source string

	// BaselineTicks is the best scalar reference timing; TimingAvailable is
	// false when the source could not produce a usable reading, in which
	// case no speedup ratios are computed.
	BaselineTicks   uint64
	TimingAvailable bool

	// Variants lists per-variant results in selection priority order.
	Variants []VariantResult

	// Verified is true when every variant matched the baseline bit-exactly.
	Verified bool

	// SNR is the signal-to-noise ratio of the Q15 result against an
	// unquantized float64 reference, in dB.
	SNR float64

	// ErrorPeak describes the strongest bin of the quantization error
	// spectrum. Only set for sine stimuli.
	ErrorPeak *SpectrumPeak
}

// Run executes every registered kernel variant on deterministic inputs,
// verifies each against the scalar baseline, and measures relative cost
// through src. A nil src selects the best available source.
func Run(cfg Config, src cycles.Source) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if src == nil {
		src = cycles.Best()
	}

	a, b := generateInputs(cfg)

	refOut := make([]q15.Sample, cfg.Size)
	baselineTicks, baselineStats := measureRuns(cfg.Runs, src, func() {
		axpy.Baseline(refOut, a, b, cfg.Alpha)
	})
	baselineOK := baselineStats.Runs > 0

	report := Report{
		Config:          cfg,
		Source:          src.Name(),
		BaselineTicks:   baselineTicks,
		TimingAvailable: baselineOK,
		Verified:        true,
	}

	for _, name := range axpy.Implementations() {
		out := make([]q15.Sample, cfg.Size)

		var runErr error
		best, stats := measureRuns(cfg.Runs, src, func() {
			runErr = axpy.ComputeWith(name, out, a, b, cfg.Alpha)
		})
		if runErr != nil {
			return Report{}, fmt.Errorf("axpybench: variant %q: %w", name, runErr)
		}

		cmp, err := axpy.Compare(refOut, out)
		if err != nil {
			return Report{}, err
		}
		if !cmp.Equal {
			report.Verified = false
		}

		result := VariantResult{
			Name:       name,
			Comparison: cmp,
			Ticks:      best,
			Reliable:   stats.Runs > 0,
			Stats:      stats,
		}
		if baselineOK && result.Reliable {
			result.Speedup, result.SpeedupOK = cycles.Speedup(baselineTicks, best)
		}

		report.Variants = append(report.Variants, result)
	}

	ideal := floatReference(a, b, cfg.Alpha)
	report.SNR = signalToNoise(ideal, refOut)

	if cfg.Signal == SignalSine {
		peak, err := errorSpectrumPeak(quantizationError(ideal, refOut))
		if err != nil {
			return Report{}, err
		}
		report.ErrorPeak = &peak
	}

	return report, nil
}

// measureRuns invokes fn runs times through src, collecting only reliable
// readings. Returns the minimum reading and the summary; a sentinel source
// yields zero reliable readings and best 0.
func measureRuns(runs int, src cycles.Source, fn func()) (best uint64, stats ticks.Stats) {
	readings := make([]uint64, 0, runs)
	for i := 0; i < runs; i++ {
		elapsed, reliable := cycles.Measure(src, fn)
		if reliable {
			readings = append(readings, elapsed)
		}
	}

	stats = ticks.Calculate(readings)
	return stats.Min, stats
}
