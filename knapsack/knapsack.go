// Package knapsack solves the 0/1 knapsack problem by tabulation and
// reconstructs which items make up the optimum.
//
// Given a capacity W and n items with integer weights and values, pick
// a subset of items of total weight ≤ W maximizing total value; each
// item is taken whole or not at all (hence 0/1).
//
// Recurrence, for item i = 1..n and capacity w = 0..W:
//
//	V[i][w] = V[i-1][w]                                  if wt_i > w
//	        = max(V[i-1][w], val_i + V[i-1][w-wt_i])     otherwise
//
// Each cell also records a Decision (Skip or Keep) so the chosen item
// set can be replayed without re-deriving it from values.
//
// Tie-break: Keep wins only on a strict improvement (">"), so when
// taking an item gains nothing it is skipped — the reconstruction
// prefers lighter solutions of equal value.
//
// Errors (sentinel):
//
//	– ErrBadCapacity if capacity < 0.
//	– ErrBadItem     if any weight or value is negative.
//
// Complexity: O(n·W) time and memory (pseudo-polynomial).
package knapsack

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Solve.
var (
	// ErrBadCapacity indicates a negative knapsack capacity.
	ErrBadCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrBadItem indicates an item with negative weight or value.
	ErrBadItem = errors.New("knapsack: item weights and values must be non-negative")
)

// Decision records, per table cell, whether the item was taken.
type Decision uint8

const (
	// None fills the base-case row/column (no items or no capacity).
	None Decision = iota

	// Skip means the value was inherited from the row above.
	Skip

	// Keep means the item was included in the optimum for this cell.
	Keep
)

// Item is one candidate for the knapsack.
type Item struct {
	Weight int
	Value  int
}

// Result holds the value and decision tables of one Solve call.
// Tables are indexed [item i][capacity w] with row 0 and column 0 as
// base cases; treat them as read-only.
type Result struct {
	// Capacity is the knapsack capacity the tables were built for.
	Capacity int

	// Value is the maximal achievable total value, Values[n][Capacity].
	Value int

	// Values is the (n+1)×(W+1) value table.
	Values [][]int

	// Decisions is the (n+1)×(W+1) decision table used by Selected.
	Decisions [][]Decision

	items []Item // kept for reconstruction
}

// Solve fills the value and decision tables bottom-up. A zero capacity
// or an empty item list is valid and yields value 0.
func Solve(capacity int, items []Item) (*Result, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("knapsack: capacity=%d: %w", capacity, ErrBadCapacity)
	}
	for idx, it := range items {
		if it.Weight < 0 || it.Value < 0 {
			return nil, fmt.Errorf("knapsack: item %d (weight=%d, value=%d): %w",
				idx, it.Weight, it.Value, ErrBadItem)
		}
	}

	n := len(items)
	values := make([][]int, n+1)
	decisions := make([][]Decision, n+1)
	for i := range values {
		values[i] = make([]int, capacity+1)
		decisions[i] = make([]Decision, capacity+1)
	}
	// Row 0 (no items) and column 0 (no capacity) stay zero / None.

	var (
		i, w             int
		exclude, include int
	)
	for i = 1; i <= n; i++ {
		for w = 0; w <= capacity; w++ {
			if w == 0 {
				continue // base case, already None/0
			}
			exclude = values[i-1][w]
			if items[i-1].Weight <= w {
				include = items[i-1].Value + values[i-1][w-items[i-1].Weight]
				if include > exclude {
					values[i][w] = include
					decisions[i][w] = Keep

					continue
				}
			}
			// Either the item does not fit or taking it gains nothing.
			values[i][w] = exclude
			decisions[i][w] = Skip
		}
	}

	return &Result{
		Capacity:  capacity,
		Value:     values[n][capacity],
		Values:    values,
		Decisions: decisions,
		items:     items,
	}, nil
}

// Selected replays the decision table into the chosen item indices
// (0-based, ascending). Iterative backtrack from (n, W).
//
// Complexity: O(n) time.
func (r *Result) Selected() []int {
	picked := make([]int, 0, len(r.items))
	i, w := len(r.items), r.Capacity
	for i > 0 && w > 0 {
		if r.Decisions[i][w] == Keep {
			picked = append(picked, i-1)
			w -= r.items[i-1].Weight
		}
		i--
	}
	// Backtracking visits items in descending order; flip to ascending.
	for l, rr := 0, len(picked)-1; l < rr; l, rr = l+1, rr-1 {
		picked[l], picked[rr] = picked[rr], picked[l]
	}

	return picked
}
