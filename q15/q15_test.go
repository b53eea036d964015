package q15

import (
	"math"
	"testing"
)

func TestSaturate(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want Sample
	}{
		{"zero", 0, 0},
		{"in range positive", 12345, 12345},
		{"in range negative", -12345, -12345},
		{"max exact", 32767, 32767},
		{"min exact", -32768, -32768},
		{"just above max", 32768, 32767},
		{"just below min", -32769, -32768},
		{"positive overflow sum", 65534, 32767},
		{"negative overflow sum", -65536, -32768},
		{"int32 max", math.MaxInt32, 32767},
		{"int32 min", math.MinInt32, -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Saturate(tt.in)
			if got != tt.want {
				t.Errorf("Saturate(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Sample
	}{
		{"zero", 0, 0},
		{"half", 0.5, 16384},
		{"negative half", -0.5, -16384},
		{"minus one", -1.0, -32768},
		{"plus one clamps", 1.0, 32767},
		{"above range clamps", 2.5, 32767},
		{"below range clamps", -2.5, -32768},
		{"largest representable", 32767.0 / 32768.0, 32767},
		{"rounds to nearest", 0.49999, 16384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloat64(tt.in)
			if got != tt.want {
				t.Errorf("FromFloat64(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat64(t *testing.T) {
	if got := Sample(16384).Float64(); got != 0.5 {
		t.Errorf("Sample(16384).Float64() = %v, want 0.5", got)
	}
	if got := MinSample.Float64(); got != -1.0 {
		t.Errorf("MinSample.Float64() = %v, want -1.0", got)
	}
	if got := MaxSample.Float64(); got >= 1.0 {
		t.Errorf("MaxSample.Float64() = %v, want < 1.0", got)
	}
}

func TestQuantizeRoundtrip(t *testing.T) {
	src := []Sample{MinSample, -1, 0, 1, 16384, MaxSample}

	asFloat := make([]float64, len(src))
	ToFloat64(asFloat, src)

	back := make([]Sample, len(src))
	Quantize(back, asFloat)

	for i := range src {
		if back[i] != src[i] {
			t.Errorf("index %d: roundtrip gave %d, want %d", i, back[i], src[i])
		}
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"ToFloat64", func() { ToFloat64(make([]float64, 3), make([]Sample, 4)) }},
		{"Quantize", func() { Quantize(make([]Sample, 4), make([]float64, 3)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic on length mismatch")
				}
			}()
			tt.fn()
		})
	}
}
