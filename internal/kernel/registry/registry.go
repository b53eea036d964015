// Package registry provides the implementation registry for Q15 kernels.
//
// The registry-based dispatch system allows multiple kernel variants
// (scalar, block, parallel, and in future SIMD builds) to coexist. The best
// implementation for the current CPU is selected automatically at runtime.
//
// Variant packages register themselves via init() functions, and the axpy
// package uses the registry to select or look up implementations.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/q15"
)

// AxpyFunc computes dst[i] = sat(a[i] + (alpha*b[i])>>15) over equal-length
// slices. Implementations panic on length mismatch and must be bit-exact
// with respect to every other registered implementation.
type AxpyFunc func(dst, a, b []q15.Sample, alpha q15.Sample)

// OpEntry represents a registered kernel implementation variant.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation
	// (e.g. "scalar", "block", "parallel").
	Name string

	// SIMDLevel indicates the instruction set required by this implementation.
	// Pure Go variants use cpu.SIMDNone.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible
	// implementations exist. Higher priority implementations are preferred.
	// Suggested priorities: scalar 0, parallel 10, block 20, SIMD 30+.
	Priority int

	// Axpy is the saturating fused multiply-shift-add kernel.
	Axpy AxpyFunc
}

// OpRegistry manages the registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the axpy package.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// Typically called from init() functions in variant packages. Safe for
// concurrent use, but all registrations should complete before the first
// call to Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU, or nil if
// nothing is compatible (which cannot happen while the scalar fallback
// is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName finds a registered implementation by name, independent of CPU
// features. Returns nil if no such variant is registered.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for testing only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// sort lazily sorts entries by priority (descending).
func (r *OpRegistry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	// Simple insertion sort (registry is small, ~3-5 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}
