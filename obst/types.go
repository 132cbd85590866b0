// Package obst defines the result types, sentinel errors and options
// for the Optimal Binary Search Tree solver.
//
// Terminology (after CLRS §15.5):
//
//	– Real key    k_i (i = 1..n): an item stored in the tree, searched
//	  for with probability p_i.
//	– Virtual key d_i (i = 0..n): a leaf standing for every unsuccessful
//	  search that lands between k_i and k_{i+1} (d_0 is "below k_1",
//	  d_n is "above k_n"), reached with probability q_i.
//	– Interval [i, j]: a contiguous run of real keys. The empty interval
//	  [i, i-1] denotes the subtree holding only the virtual key d_{i-1}.
//
// Errors (sentinel):
//
//	– ErrLengthMismatch       if len(q) != len(p)+1.
//	– ErrNegativeProbability  if any p or q entry is negative.
//	– ErrBadProbability       if any p or q entry is NaN or ±Inf.
//	– ErrBadLabels            if supplied labels do not match the key
//	  or gap counts.
//
// The solver does NOT verify that the probabilities sum to 1; that is
// a caller contract (the tables stay well-defined either way, the
// "expected cost" reading just loses meaning).
package obst

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrLengthMismatch indicates that the gap-probability slice does not
	// hold exactly one more entry than the key-probability slice.
	ErrLengthMismatch = errors.New("obst: len(q) must equal len(p)+1")

	// ErrNegativeProbability indicates a negative entry in p or q.
	ErrNegativeProbability = errors.New("obst: probabilities must be non-negative")

	// ErrBadProbability indicates a NaN or infinite entry in p or q.
	ErrBadProbability = errors.New("obst: probability is NaN or Inf")

	// ErrBadLabels indicates that WithKeyLabels/WithGapLabels supplied a
	// slice whose length does not match the number of keys (n) or gaps (n+1).
	ErrBadLabels = errors.New("obst: label count does not match key/gap count")
)

// Side tells which child slot a node occupies relative to its parent.
type Side int

const (
	// SideRoot marks the single node with no parent (the tree root).
	SideRoot Side = iota

	// SideLeft marks a left child.
	SideLeft

	// SideRight marks a right child.
	SideRight
)

// String implements fmt.Stringer for readable test output and examples.
func (s Side) String() string {
	switch s {
	case SideRoot:
		return "root"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Placement is one parent/child fact of the reconstructed tree:
// Child hangs off Parent on the given Side. For the overall root,
// Parent is "" and Side is SideRoot.
type Placement struct {
	Child  string // label of the placed node (real or virtual key)
	Parent string // label of its parent; "" for the tree root
	Side   Side   // SideRoot, SideLeft or SideRight
}

// Result holds the complete outcome of one Solve call: the minimal
// expected cost, the chosen overall root, and the three DP tables the
// reconstruction walks. All tables are freshly allocated per call and
// must be treated as read-only by callers.
//
// Table indexing is 1-based to match the recurrence: valid rows are
// 1..n+1 and columns 0..n, so each table is allocated (n+2)×(n+2).
//
//	E[i][j]     – minimal expected search cost of a BST over keys i..j
//	              (plus flanking virtual keys); E[i][i-1] == q[i-1].
//	W[i][j]     – probability mass of interval [i, j];
//	              W[i][j] == W[i][j-1] + p_j + q_j.
//	Roots[i][j] – index r of the key rooting the optimal subtree over
//	              [i, j]; meaningless for empty intervals.
type Result struct {
	// N is the number of real keys.
	N int

	// Cost is the minimal expected search cost, E[1][N].
	// For N == 0 it degenerates to q[0].
	Cost float64

	// Root is the 1-based index of the overall tree root, Roots[1][N].
	// Zero when N == 0 (the tree is the single virtual leaf d_0).
	Root int

	// E is the expected-cost table.
	E [][]float64

	// W is the interval-weight table.
	W [][]float64

	// Roots is the root-choice table.
	Roots [][]int

	// Keys holds the real-key labels, 1-based: Keys[i] labels k_i,
	// Keys[0] is unused. Defaults to "k1".."kn".
	Keys []string

	// Gaps holds the virtual-key labels, 0-based: Gaps[i] labels d_i.
	// Defaults to "d0".."dn".
	Gaps []string
}

// Options configures Solve. Both label slices are optional; when nil,
// positional names are generated.
//
// Keys – labels for the n real keys, in key order (0-based input;
// Solve shifts them to the 1-based table convention).
// Gaps – labels for the n+1 virtual keys, Gaps[i] naming d_i.
type Options struct {
	Keys []string
	Gaps []string
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithKeyLabels sets display labels for the real keys.
// len(keys) must equal len(p); Solve returns ErrBadLabels otherwise.
func WithKeyLabels(keys []string) Option {
	return func(o *Options) {
		o.Keys = keys
	}
}

// WithGapLabels sets display labels for the virtual keys.
// len(gaps) must equal len(p)+1; Solve returns ErrBadLabels otherwise.
func WithGapLabels(gaps []string) Option {
	return func(o *Options) {
		o.Gaps = gaps
	}
}

// DefaultOptions returns an Options struct with no labels set; Solve
// then generates the positional names "k1".."kn" and "d0".."dn".
func DefaultOptions() Options {
	return Options{
		Keys: nil,
		Gaps: nil,
	}
}
