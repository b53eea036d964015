package parallel

import (
	"github.com/cwbudde/algo-q15/internal/cpu"
	"github.com/cwbudde/algo-q15/internal/kernel/registry"
)

// init registers the goroutine fan-out implementation with the kernel
// registry.
//
// Priority: 10 (above scalar; below block, which wins for typical sizes
// without scheduling overhead)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "parallel",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Axpy:      Axpy,
	})
}
