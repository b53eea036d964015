package parallel

import (
	"sync"

	"github.com/cwbudde/algo-q15/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-q15/q15"
)

// chunk is the number of elements handed to one goroutine. Inputs shorter
// than one chunk are not worth the scheduling overhead and run inline.
const chunk = 4096

// Axpy computes dst[i] = sat(a[i] + (alpha*b[i])>>15) by fanning fixed-size
// index ranges out to goroutines, each running the scalar kernel on its
// slice. Slices must have equal length. Panics if lengths differ.
//
// Every element depends only on a[i] and b[i] and each range is disjoint,
// so the result is bit-exact with the scalar variant.
func Axpy(dst, a, b []q15.Sample, alpha q15.Sample) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	if n <= chunk {
		scalar.Axpy(dst, a, b, alpha)
		return
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i += chunk {
		end := min(i+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			scalar.Axpy(dst[lo:hi], a[lo:hi], b[lo:hi], alpha)
		}(i, end)
	}
	wg.Wait()
}
