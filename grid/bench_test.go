package grid_test

import (
	"testing"

	"github.com/katalvlaran/moletrap/grid"
)

// BenchmarkAdmissible measures the per-axis window scan on a 64×64×64 grid
// with 10% preset traps and threshold 4.
// Complexity: O(threshold × size) per axis.
func BenchmarkAdmissible(b *testing.B) {
	g, err := grid.Generate([]int{64, 64, 64}, 64*64*64/10, grid.NewRand(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Admissible(g, 4)
	}
}

// BenchmarkTranspose measures a full axis reversal of a 32×32×32 grid.
func BenchmarkTranspose(b *testing.B) {
	g, err := grid.Generate([]int{32, 32, 32}, 1000, grid.NewRand(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	perm := []int{2, 1, 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Transpose(perm)
	}
}
