package lcs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dpkit/lcs"
)

// benchmarkSolve runs Solve on two synthetic DNA-like strings of
// lengths m and n.
func benchmarkSolve(b *testing.B, m, n int) {
	bases := "ACGT"
	var xb, yb strings.Builder
	for i := 0; i < m; i++ {
		xb.WriteByte(bases[i%4])
	}
	for j := 0; j < n; j++ {
		yb.WriteByte(bases[(j*3)%4])
	}
	x, y := xb.String(), yb.String()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if res := lcs.Solve(x, y); res.Length < 0 {
			b.Fatal("impossible negative length")
		}
	}
}

// BenchmarkSolve_Small benchmarks 100×100 inputs.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 100, 100)
}

// BenchmarkSolve_Medium benchmarks 500×500 inputs.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 500, 500)
}
