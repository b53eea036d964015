package axpy_test

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-q15/axpy"
	"github.com/cwbudde/algo-q15/internal/testutil"
	"github.com/cwbudde/algo-q15/q15"
)

var benchSizes = []int{64, 1024, 4096, 65536}

func BenchmarkCompute(b *testing.B) {
	for _, name := range axpy.Implementations() {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%d", name, size), func(b *testing.B) {
				x := testutil.DeterministicNoise(42, size)
				y := testutil.DeterministicNoise(1337, size)
				dst := make([]q15.Sample, size)

				b.SetBytes(int64(size * 2 * 3))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := axpy.ComputeWith(name, dst, x, y, 16384); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			x := testutil.DeterministicNoise(42, size)
			y := append([]q15.Sample(nil), x...)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := axpy.Compare(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
