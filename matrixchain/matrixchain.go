// Package matrixchain finds the cheapest order in which to multiply a
// chain of matrices (CLRS §15.2).
//
// A chain of n matrices A_1..A_n is described by a dimension slice
// dims of length n+1: A_i has dims[i-1] rows and dims[i] columns.
// Multiplication is associative but not cost-neutral — the
// parenthesization decides how many scalar multiplications are spent.
//
// Recurrence (interval DP by increasing chain length):
//
//	m[i][i] = 0
//	m[i][j] = min over k in [i, j) of
//	          m[i][k] + m[k+1][j] + dims[i-1]*dims[k]*dims[j]
//	s[i][j] = the k attaining the minimum (split table).
//
// Tie-break: strict "<", so the leftmost optimal split is recorded.
//
// Errors (sentinel):
//
//	– ErrBadDimension if any dimension is not positive.
//
// Complexity: O(n³) time, O(n²) memory.
package matrixchain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrBadDimension indicates a zero or negative matrix dimension.
var ErrBadDimension = errors.New("matrixchain: dimensions must be positive")

// Result holds the cost and split tables of one Solve call.
// Tables are 1-based; treat them as read-only.
type Result struct {
	// N is the number of matrices in the chain.
	N int

	// Cost is the minimal number of scalar multiplications, M[1][N].
	Cost int

	// M is the (n+1)×(n+1) cost table; M[i][j] covers the chain A_i..A_j.
	M [][]int

	// S is the (n+1)×(n+1) split table; S[i][j] is the k where the
	// optimal parenthesization splits A_i..A_j into (A_i..A_k)(A_k+1..A_j).
	S [][]int
}

// Solve computes the optimal multiplication order for the chain
// described by dims. Fewer than two dimensions means no matrices at
// all: a valid zero-cost result. Non-positive dimensions are rejected
// with ErrBadDimension before any allocation.
func Solve(dims []int) (*Result, error) {
	for idx, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("matrixchain: dims[%d]=%d: %w", idx, d, ErrBadDimension)
		}
	}
	if len(dims) < 2 {
		return &Result{N: 0, Cost: 0}, nil
	}

	n := len(dims) - 1
	m := make([][]int, n+1)
	s := make([][]int, n+1)
	for i := range m {
		m[i] = make([]int, n+1)
		s[i] = make([]int, n+1)
	}
	// m[i][i] == 0 already: a single matrix needs no multiplication.

	var (
		l, i, j, k, cost int
	)
	for l = 2; l <= n; l++ {
		for i = 1; i <= n-l+1; i++ {
			j = i + l - 1
			m[i][j] = math.MaxInt
			for k = i; k < j; k++ {
				cost = m[i][k] + m[k+1][j] + dims[i-1]*dims[k]*dims[j]
				if cost < m[i][j] {
					m[i][j] = cost
					s[i][j] = k
				}
			}
		}
	}

	return &Result{N: n, Cost: m[1][n], M: m, S: s}, nil
}

// Parenthesization renders the optimal order as a string, e.g.
// "((A1(A2A3))((A4A5)A6))" for the CLRS example. An empty chain
// renders as "", a single matrix as "A1".
//
// Complexity: O(n) nodes, O(n) recursion depth.
func (r *Result) Parenthesization() string {
	if r.N == 0 {
		return ""
	}
	var sb strings.Builder
	r.paren(1, r.N, &sb)

	return sb.String()
}

// paren writes the parenthesization of A_i..A_j following the split table.
func (r *Result) paren(i, j int, sb *strings.Builder) {
	if i == j {
		fmt.Fprintf(sb, "A%d", i)

		return
	}
	sb.WriteByte('(')
	r.paren(i, r.S[i][j], sb)
	r.paren(r.S[i][j]+1, j, sb)
	sb.WriteByte(')')
}
