package axpybench

import (
	"errors"

	"github.com/cwbudde/algo-q15/q15"
)

// Errors returned by configuration validation.
var (
	ErrInvalidSize      = errors.New("axpybench: size must be positive")
	ErrInvalidRuns      = errors.New("axpybench: runs must be positive")
	ErrInvalidSignal    = errors.New("axpybench: unknown signal kind")
	ErrInvalidFrequency = errors.New("axpybench: frequency must be in (0, 0.5)")
	ErrInvalidAmplitude = errors.New("axpybench: amplitude must be in (0, 1]")
)

// SignalKind selects the stimulus used to fill the input vectors.
type SignalKind int

const (
	// SignalNoise fills inputs with uniform noise over the full Q15 range.
	SignalNoise SignalKind = iota

	// SignalSine fills inputs with quantized sine waves.
	SignalSine
)

// String returns the signal kind name as used on the command line.
func (k SignalKind) String() string {
	switch k {
	case SignalNoise:
		return "noise"
	case SignalSine:
		return "sine"
	default:
		return "unknown"
	}
}

// Config holds benchmark parameters.
type Config struct {
	// Size is the vector length n shared by all buffers.
	Size int

	// Runs is the number of timed invocations per variant. The best (minimum)
	// reliable reading is used for speedup ratios.
	Runs int

	// Alpha is the Q15 multiplicative coefficient.
	Alpha q15.Sample

	// Seed feeds the deterministic input generator. Equal seeds reproduce
	// bit-identical inputs across runs.
	Seed int64

	// Signal selects the stimulus kind.
	Signal SignalKind

	// Frequency is the sine frequency in cycles per sample (sine only).
	Frequency float64

	// Amplitude is the sine peak amplitude in (0, 1] (sine only).
	Amplitude float64
}

// DefaultConfig returns the canonical benchmark setup: 4096 elements,
// alpha 0.5 in Q15, full-range noise from seed 42.
func DefaultConfig() Config {
	return Config{
		Size:      4096,
		Runs:      1,
		Alpha:     16384,
		Seed:      42,
		Signal:    SignalNoise,
		Frequency: 1.0 / 64.0,
		Amplitude: 0.9,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return ErrInvalidSize
	}
	if c.Runs <= 0 {
		return ErrInvalidRuns
	}

	switch c.Signal {
	case SignalNoise:
		return nil
	case SignalSine:
		if c.Frequency <= 0 || c.Frequency >= 0.5 {
			return ErrInvalidFrequency
		}
		if c.Amplitude <= 0 || c.Amplitude > 1 {
			return ErrInvalidAmplitude
		}
		return nil
	default:
		return ErrInvalidSignal
	}
}
