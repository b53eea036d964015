// Command q15bench benchmarks and verifies the Q15 AXPY kernel variants.
//
// Usage:
//
//	q15bench [flags]
//
// It generates deterministic test vectors, runs every registered kernel
// implementation, verifies each result bit-exactly against the scalar
// baseline, and prints a timing and quality report. The exit status is 0
// when verification passes and 1 otherwise.
//
// Examples:
//
//	q15bench
//	q15bench -n 65536 -alpha 8192
//	q15bench -signal sine -freq 0.01 -amp 0.8
//	q15bench -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-q15/axpy"
	"github.com/cwbudde/algo-q15/cycles"
	"github.com/cwbudde/algo-q15/measure/axpybench"
	"github.com/cwbudde/algo-q15/q15"
)

func main() {
	def := axpybench.DefaultConfig()

	size := flag.Int("n", def.Size, "vector length in samples")
	runs := flag.Int("runs", def.Runs, "timed invocations per variant (best reading wins)")
	alpha := flag.Int("alpha", int(def.Alpha), "Q15 coefficient (-32768..32767)")
	seed := flag.Int64("seed", def.Seed, "seed for deterministic input generation")
	signal := flag.String("signal", def.Signal.String(), "input stimulus: noise or sine")
	freq := flag.Float64("freq", def.Frequency, "sine frequency in cycles per sample")
	amp := flag.Float64("amp", def.Amplitude, "sine peak amplitude in (0, 1]")
	timer := flag.String("timer", "auto", "tick source: auto, monotonic or none")
	list := flag.Bool("list", false, "list registered kernel implementations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: q15bench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Benchmarks and verifies the Q15 AXPY kernel variants.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  q15bench -n 65536 -alpha 8192\n")
		fmt.Fprintf(os.Stderr, "  q15bench -signal sine -freq 0.01\n")
	}
	flag.Parse()

	if *list {
		for _, name := range axpy.Implementations() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := buildConfig(*size, *runs, *alpha, *seed, *signal, *freq, *amp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	src, err := buildSource(*timer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report, err := axpybench.Run(cfg, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printReport(report)

	if !report.Verified {
		os.Exit(1)
	}
}

func buildConfig(size, runs, alpha int, seed int64, signal string, freq, amp float64) (axpybench.Config, error) {
	cfg := axpybench.DefaultConfig()
	cfg.Size = size
	cfg.Runs = runs
	cfg.Seed = seed
	cfg.Frequency = freq
	cfg.Amplitude = amp

	if alpha < int(q15.MinSample) || alpha > int(q15.MaxSample) {
		return axpybench.Config{}, fmt.Errorf("alpha %d outside Q15 range", alpha)
	}
	cfg.Alpha = q15.Sample(alpha)

	switch signal {
	case "noise":
		cfg.Signal = axpybench.SignalNoise
	case "sine":
		cfg.Signal = axpybench.SignalSine
	default:
		return axpybench.Config{}, fmt.Errorf("unknown signal %q (use noise or sine)", signal)
	}

	return cfg, cfg.Validate()
}

func buildSource(timer string) (cycles.Source, error) {
	switch timer {
	case "auto":
		return cycles.Best(), nil
	case "monotonic":
		return cycles.Monotonic(), nil
	case "none":
		return cycles.Null(), nil
	default:
		return nil, fmt.Errorf("unknown timer %q (use auto, monotonic or none)", timer)
	}
}

func printReport(r axpybench.Report) {
	fmt.Println("Q15 AXPY Performance Benchmark")
	fmt.Println("==============================")
	fmt.Printf("Test size: %d elements\n", r.Config.Size)
	fmt.Printf("Alpha: 0x%04X (%.3f Q15)\n", uint16(r.Config.Alpha), r.Config.Alpha.Float64())
	fmt.Printf("Signal: %s (seed %d)\n", r.Config.Signal, r.Config.Seed)
	fmt.Printf("Timer: %s\n\n", r.Source)

	multiRun := r.Config.Runs > 1

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if multiRun {
		fmt.Fprintf(tw, "Implementation\tBest\tMedian\tStdDev\tSpeedup\tCheck\n")
		fmt.Fprintf(tw, "--------------\t----\t------\t------\t-------\t-----\n")
	} else {
		fmt.Fprintf(tw, "Implementation\tTicks\tSpeedup\tCheck\n")
		fmt.Fprintf(tw, "--------------\t-----\t-------\t-----\n")
	}
	for _, v := range r.Variants {
		if multiRun {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", v.Name, ticksCell(v),
				statCell(v, v.Stats.Median), statCell(v, v.Stats.StdDev),
				speedupCell(v), checkCell(v))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Name, ticksCell(v), speedupCell(v), checkCell(v))
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	if !r.TimingAvailable {
		fmt.Println("\nTiming unavailable on this tick source; no ratios reported.")
	}

	fmt.Printf("\nQuantization SNR: %s\n", snrCell(r.SNR))
	if r.ErrorPeak != nil {
		fmt.Printf("Error spectrum peak: bin %d at %.1f dBFS\n", r.ErrorPeak.Bin, r.ErrorPeak.Level)
	}

	if r.Verified {
		fmt.Println("\nVerification: PASSED (bit-exact)")
	} else {
		fmt.Println("\nVerification: FAILED")
		for _, v := range r.Variants {
			if !v.Comparison.Equal {
				fmt.Printf("  %s: %s\n", v.Name, v.Comparison)
			}
		}
	}
}

func ticksCell(v axpybench.VariantResult) string {
	if !v.Reliable {
		return "n/a"
	}
	return fmt.Sprintf("%d", v.Ticks)
}

func statCell(v axpybench.VariantResult, stat float64) string {
	if !v.Reliable {
		return "n/a"
	}
	return fmt.Sprintf("%.0f", stat)
}

func speedupCell(v axpybench.VariantResult) string {
	if !v.SpeedupOK {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", v.Speedup)
}

func checkCell(v axpybench.VariantResult) string {
	if v.Comparison.Equal {
		return "ok"
	}
	return v.Comparison.String()
}

func snrCell(snr float64) string {
	if math.IsInf(snr, 1) {
		return "exact (no quantization error)"
	}
	return fmt.Sprintf("%.1f dB", snr)
}
