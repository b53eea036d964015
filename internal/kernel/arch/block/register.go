package block

import (
	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernel/registry"
)

// init registers the unrolled block implementation with the kernel registry.
//
// Priority: 20 (preferred default; pure Go, so SIMDNone)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "block",
		SIMDLevel: cpu.SIMDNone,
		Priority:  20,
		Axpy:      Axpy,
	})
}
