package obst_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/obst"
)

// benchmarkSolve runs the solver on a uniform n-key instance.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n int) {
	// Uniform mass: half on keys, half on gaps.
	p := make([]float64, n)
	q := make([]float64, n+1)
	for i := range p {
		p[i] = 0.5 / float64(n)
	}
	for i := range q {
		q[i] = 0.5 / float64(n+1)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := obst.Solve(p, q); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks the O(n³) fill on 32 keys.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 32)
}

// BenchmarkSolve_Medium benchmarks the O(n³) fill on 128 keys.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 128)
}

// BenchmarkSolve_Large benchmarks the O(n³) fill on 512 keys.
func BenchmarkSolve_Large(b *testing.B) {
	benchmarkSolve(b, 512)
}

// BenchmarkStructure reconstructs the tree shape from a precomputed
// 512-key result; the walk itself is O(n).
func BenchmarkStructure(b *testing.B) {
	const n = 512
	p := make([]float64, n)
	q := make([]float64, n+1)
	for i := range p {
		p[i] = 0.5 / float64(n)
	}
	for i := range q {
		q[i] = 0.5 / float64(n+1)
	}
	res, err := obst.Solve(p, q)
	if err != nil {
		b.Fatalf("Solve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := res.Structure(); len(got) != 2*n+1 {
			b.Fatalf("unexpected structure size %d", len(got))
		}
	}
}
