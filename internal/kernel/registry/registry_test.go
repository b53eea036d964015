package registry

import (
	"testing"

	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/q15"
)

func dummyAxpy(dst, a, b []q15.Sample, alpha q15.Sample) {}

func TestOpRegistry_Register(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{
		Name:      "scalar",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Axpy:      dummyAxpy,
	})
	reg.Register(OpEntry{
		Name:      "block",
		SIMDLevel: cpu.SIMDNone,
		Priority:  20,
		Axpy:      dummyAxpy,
	})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "block" {
		t.Errorf("expected highest priority first, got %q", entries[0].Name)
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// Register in random order to test sorting.
	reg.Register(OpEntry{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 30})
	reg.Register(OpEntry{Name: "block", SIMDLevel: cpu.SIMDNone, Priority: 20})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "AVX2 available - select AVX2",
			features: cpu.Features{HasSSE2: true, HasAVX2: true},
			want:     "avx2",
		},
		{
			name:     "no AVX2 - select block",
			features: cpu.Features{HasSSE2: true},
			want:     "block",
		},
		{
			name:     "ForceGeneric still selects best portable variant",
			features: cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true},
			want:     "block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_LookupName(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "parallel", SIMDLevel: cpu.SIMDNone, Priority: 10})

	if entry := reg.LookupName("parallel"); entry == nil || entry.Name != "parallel" {
		t.Errorf("LookupName(parallel) = %v", entry)
	}
	if entry := reg.LookupName("rvv"); entry != nil {
		t.Errorf("expected nil for unknown name, got %q", entry.Name)
	}
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Reset()

	if entries := reg.ListEntries(); len(entries) != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", len(entries))
	}
}

func TestSIMDLevel_String(t *testing.T) {
	tests := []struct {
		level cpu.SIMDLevel
		want  string
	}{
		{cpu.SIMDNone, "None"},
		{cpu.SIMDSSE2, "SSE2"},
		{cpu.SIMDAVX2, "AVX2"},
		{cpu.SIMDNEON, "NEON"},
		{cpu.SIMDLevel(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCPU_Supports(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		level    cpu.SIMDLevel
		want     bool
	}{
		{"portable always supported", cpu.Features{}, cpu.SIMDNone, true},
		{"SSE2 supported when present", cpu.Features{HasSSE2: true}, cpu.SIMDSSE2, true},
		{"SSE2 not supported when absent", cpu.Features{}, cpu.SIMDSSE2, false},
		{"NEON supported when present", cpu.Features{HasNEON: true}, cpu.SIMDNEON, true},
		{"ForceGeneric blocks SIMD", cpu.Features{HasAVX2: true, ForceGeneric: true}, cpu.SIMDAVX2, false},
		{"ForceGeneric allows portable", cpu.Features{ForceGeneric: true}, cpu.SIMDNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cpu.Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
