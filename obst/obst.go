// Package obst implements the Optimal Binary Search Tree solver.
//
// Given n sorted real keys with hit probabilities p_1..p_n and n+1 gap
// (miss) probabilities q_0..q_n, Solve finds the BST layout minimizing
// the expected number of comparisons per search, and keeps enough state
// to reconstruct that layout exactly.
//
// Algorithm Outline (interval DP by increasing length, CLRS §15.5):
//  1. Allocate (n+2)×(n+2) tables e (cost), w (weight), root (choice).
//  2. Base cases, for i = 1..n+1:
//     e[i][i-1] = w[i][i-1] = q[i-1]
//     (the empty interval [i, i-1] is just the virtual leaf d_{i-1}).
//  3. For length l = 1..n, for start i = 1..n-l+1, with j = i+l-1:
//     w[i][j] = w[i][j-1] + p_j + q_j                     (O(1) update)
//     e[i][j] = min over r in [i, j] of
//     e[i][r-1] + e[r+1][j] + w[i][j]
//     root[i][j] = the r attaining the minimum.
//  4. The whole-tree answer is e[1][n] with root[1][n] on top.
//
// Tie-break rule: the inner minimum uses a strict "<" comparison, so
// the FIRST (smallest) r reaching the minimal cost is kept and later
// equal-cost candidates never overwrite it. Reconstruction determinism
// depends on this; do not relax it to "<=".
//
// Complexity:
//
//	– Time:  O(n³) — three nested loops (length, start, candidate root).
//	– Space: O(n²) — three dense tables.
package obst

import (
	"fmt"
	"math"
)

// Solve computes the optimal BST tables for hit probabilities p
// (p[i] is the 0-based storage of p_{i+1}) and miss probabilities q
// (q[i] belongs to gap d_i). It requires len(q) == len(p)+1 and all
// entries finite and non-negative; validation happens before any table
// is allocated, so malformed input never triggers partial computation.
//
// n == 0 is valid: the tree degenerates to the single virtual leaf d_0
// and the cost is q[0].
//
// Probabilities are NOT checked to sum to 1 — that is the caller's
// contract, documented rather than enforced.
//
// Returns a freshly allocated *Result; successive calls share no state.
func Solve(p, q []float64, opts ...Option) (*Result, error) {
	n := len(p)

	// 1) Validate shape: q must carry exactly one more entry than p.
	if len(q) != n+1 {
		return nil, fmt.Errorf("obst: len(p)=%d len(q)=%d: %w", n, len(q), ErrLengthMismatch)
	}

	// 2) Validate values: every probability finite and non-negative.
	if err := validateProbabilities(p, q); err != nil {
		return nil, err
	}

	// 3) Build and validate options (labels only).
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	keys, gaps, err := resolveLabels(cfg, n)
	if err != nil {
		return nil, err
	}

	// 4) Allocate fresh tables sized (n+2)×(n+2) so that row n+1 and
	//    column 0 are addressable by the recurrence.
	size := n + 2
	e := newFloatTable(size)
	w := newFloatTable(size)
	root := newIntTable(size)

	// 5) Base cases: the empty interval [i, i-1] holds only d_{i-1}.
	var i int
	for i = 1; i <= n+1; i++ {
		e[i][i-1] = q[i-1]
		w[i][i-1] = q[i-1]
	}

	// 6) Fill bottom-up by interval length. Every cell of length l
	//    reads only already-final cells of length < l.
	var (
		j, l, r int
		cost    float64
	)
	for l = 1; l <= n; l++ {
		for i = 1; i <= n-l+1; i++ {
			j = i + l - 1

			// Incremental weight: w[i][j] = w[i][j-1] + p_j + q_j.
			// p is 0-based storage, so conceptual p_j lives at p[j-1].
			w[i][j] = w[i][j-1] + p[j-1] + q[j]

			// Minimize over candidate roots r = i..j.
			e[i][j] = math.Inf(1)
			for r = i; r <= j; r++ {
				cost = e[i][r-1] + e[r+1][j] + w[i][j]
				// Strict "<": first minimal root wins ties.
				if cost < e[i][j] {
					e[i][j] = cost
					root[i][j] = r
				}
			}
		}
	}

	// 7) Package the outcome. For n == 0 the "tree" is d_0: cost is the
	//    base-case cell e[1][0] and no real root exists (Root == 0).
	res := &Result{
		N:     n,
		Cost:  e[1][n],
		E:     e,
		W:     w,
		Roots: root,
		Keys:  keys,
		Gaps:  gaps,
	}
	if n > 0 {
		res.Root = root[1][n]
	}

	return res, nil
}

// validateProbabilities rejects NaN, ±Inf and negative entries in
// either slice. Fail fast, before any allocation.
// Complexity: O(n).
func validateProbabilities(p, q []float64) error {
	var (
		idx int
		v   float64
	)
	for idx, v = range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("obst: p[%d]=%v: %w", idx, v, ErrBadProbability)
		}
		if v < 0 {
			return fmt.Errorf("obst: p[%d]=%v: %w", idx, v, ErrNegativeProbability)
		}
	}
	for idx, v = range q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("obst: q[%d]=%v: %w", idx, v, ErrBadProbability)
		}
		if v < 0 {
			return fmt.Errorf("obst: q[%d]=%v: %w", idx, v, ErrNegativeProbability)
		}
	}

	return nil
}

// resolveLabels turns Options labels (or defaults) into the table
// convention: keys 1-based with keys[0] unused, gaps 0-based.
// Complexity: O(n).
func resolveLabels(cfg Options, n int) ([]string, []string, error) {
	// Real-key labels.
	if cfg.Keys != nil && len(cfg.Keys) != n {
		return nil, nil, fmt.Errorf("obst: %d key labels for %d keys: %w", len(cfg.Keys), n, ErrBadLabels)
	}
	keys := make([]string, n+1) // keys[0] stays ""
	var i int
	for i = 1; i <= n; i++ {
		if cfg.Keys != nil {
			keys[i] = cfg.Keys[i-1]
		} else {
			keys[i] = fmt.Sprintf("k%d", i)
		}
	}

	// Virtual-key labels.
	if cfg.Gaps != nil && len(cfg.Gaps) != n+1 {
		return nil, nil, fmt.Errorf("obst: %d gap labels for %d gaps: %w", len(cfg.Gaps), n+1, ErrBadLabels)
	}
	gaps := make([]string, n+1)
	for i = 0; i <= n; i++ {
		if cfg.Gaps != nil {
			gaps[i] = cfg.Gaps[i]
		} else {
			gaps[i] = fmt.Sprintf("d%d", i)
		}
	}

	return keys, gaps, nil
}
