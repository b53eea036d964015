package axpy

import (
	"errors"

	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-q15/internal/kernel/registry"
	"github.com/cwbudde/algo-q15/q15"
)

// ErrUnknownImplementation is returned by ComputeWith for a variant name
// that is not registered.
var ErrUnknownImplementation = errors.New("axpy: unknown implementation")

// Compute performs the saturating Q15 AXPY: dst[i] = sat(a[i] + (alpha*b[i])>>15).
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation for the current CPU.
func Compute(dst, a, b []q15.Sample, alpha q15.Sample) {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		scalar.Axpy(dst, a, b, alpha)
		return
	}
	entry.Axpy(dst, a, b, alpha)
}

// Baseline performs the saturating Q15 AXPY with the scalar reference
// implementation, regardless of CPU features. Every other variant is
// bit-exact with respect to this one.
func Baseline(dst, a, b []q15.Sample, alpha q15.Sample) {
	scalar.Axpy(dst, a, b, alpha)
}

// ComputeWith performs the saturating Q15 AXPY with the named variant.
// Returns ErrUnknownImplementation if no such variant is registered.
func ComputeWith(name string, dst, a, b []q15.Sample, alpha q15.Sample) error {
	entry := registry.Global.LookupName(name)
	if entry == nil {
		return ErrUnknownImplementation
	}
	entry.Axpy(dst, a, b, alpha)
	return nil
}

// Implementations returns the names of all registered variants, ordered by
// selection priority (preferred first).
func Implementations() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
