package scalar

import (
	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernel/registry"
)

// init registers the scalar implementation with the kernel registry.
//
// The scalar loop is the baseline fallback and the reference every other
// variant is verified against.
//
// Priority: 0 (lowest - used only when no alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "scalar",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Axpy:      Axpy,
	})
}
