package axpy

// This file imports the kernel variant packages to trigger their init()
// functions, which register implementations with the global registry.
// All variants are portable pure Go, so there is no per-arch split.

import (
	// Scalar reference implementation (baseline fallback)
	_ "github.com/cwbudde/algo-q15/internal/kernel/arch/scalar"

	// Alternate execution strategies
	_ "github.com/cwbudde/algo-q15/internal/kernel/arch/block"
	_ "github.com/cwbudde/algo-q15/internal/kernel/arch/parallel"
)
