// Package rodcut maximizes the revenue from cutting a rod into priced
// pieces (CLRS §15.1, extended bottom-up variant).
//
// prices[i] is the price of a piece of length i+1; the rod may be
// longer than the price table, in which case the optimum combines
// several priced pieces. Alongside the revenue table the solver keeps
// a first-cut table, so the actual cut lengths can be replayed.
//
// Tie-break: strict ">", so the shortest first piece wins among
// equal-revenue cuts and reconstruction is deterministic.
//
// Errors (sentinel):
//
//	– ErrBadLength if the rod length is negative.
//	– ErrBadPrice  if any price is negative.
//
// Complexity: O(n·min(n, m)) time, O(n) memory, with m priced lengths.
package rodcut

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrBadLength indicates a negative rod length.
	ErrBadLength = errors.New("rodcut: length must be non-negative")

	// ErrBadPrice indicates a negative piece price.
	ErrBadPrice = errors.New("rodcut: prices must be non-negative")
)

// Result holds the revenue and first-cut tables of one Solve call.
// Treat both as read-only.
type Result struct {
	// Length is the rod length the tables were built for.
	Length int

	// Revenue is the maximal total revenue, Revenues[Length].
	Revenue int

	// Revenues[j] is the maximal revenue for a rod of length j.
	Revenues []int

	// FirstCuts[j] is the length of the first piece in an optimal
	// cutting of a length-j rod; 0 when no priced piece fits.
	FirstCuts []int
}

// Solve fills the revenue table bottom-up. A zero length, or a length
// no priced piece fits into, yields revenue 0 — not an error.
func Solve(prices []int, length int) (*Result, error) {
	if length < 0 {
		return nil, fmt.Errorf("rodcut: length=%d: %w", length, ErrBadLength)
	}
	for idx, p := range prices {
		if p < 0 {
			return nil, fmt.Errorf("rodcut: prices[%d]=%d: %w", idx, p, ErrBadPrice)
		}
	}

	val := make([]int, length+1)
	cut := make([]int, length+1)
	// val[0] == 0: a zero-length rod earns nothing.

	m := len(prices) // longest piece with a listed price
	var (
		j, i, best, bestCut, cand int
	)
	for j = 1; j <= length; j++ {
		best, bestCut = math.MinInt, 0
		// First piece of length i, priced prices[i-1]; the remainder
		// j-i is already solved.
		for i = 1; i <= j && i <= m; i++ {
			cand = prices[i-1] + val[j-i]
			if cand > best {
				best = cand
				bestCut = i
			}
		}
		if best == math.MinInt {
			// No piece fits (empty price table): worth nothing.
			best, bestCut = 0, 0
		}
		val[j] = best
		cut[j] = bestCut
	}

	return &Result{
		Length:    length,
		Revenue:   val[length],
		Revenues:  val,
		FirstCuts: cut,
	}, nil
}

// Cuts replays the first-cut table into the list of piece lengths of
// one optimal cutting, in the order they are cut off.
//
// Complexity: O(n) time.
func (r *Result) Cuts() []int {
	pieces := make([]int, 0, r.Length)
	for j := r.Length; j > 0 && r.FirstCuts[j] > 0; j -= r.FirstCuts[j] {
		pieces = append(pieces, r.FirstCuts[j])
	}

	return pieces
}
