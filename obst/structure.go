package obst

// Structure replays the root-choice table into the optimal tree's
// shape: an ordered slice of Placement facts, one per node (real keys
// and virtual leaves alike).
//
// Ordering guarantee: the slice is a pre-order traversal — each node
// appears before its children, and its whole left subtree appears
// before its right subtree. Tests may therefore assert the exact
// sequence, not just membership.
//
// The walk uses an explicit LIFO work-list instead of recursion: tree
// depth can reach n under pathological probability skews, and a heap
// frame is cheaper than betting on stack headroom. Pushing the right
// interval before the left one preserves pre-order emission.
//
// Complexity: O(n) time (2n+1 nodes), O(n) auxiliary space.
func (r *Result) Structure() []Placement {
	// Degenerate tree: no real keys, the root is the virtual leaf d_0.
	if r.N == 0 {
		return []Placement{{Child: r.Gaps[0], Parent: "", Side: SideRoot}}
	}

	// frame describes one pending interval: [i, j] hanging off parent
	// on the given side. An empty interval (i > j) stands for the
	// virtual leaf d_j.
	type frame struct {
		i, j   int
		parent string
		side   Side
	}

	// A tree over n keys has n internal nodes and n+1 virtual leaves.
	out := make([]Placement, 0, 2*r.N+1)
	stack := make([]frame, 0, r.N+1)
	stack = append(stack, frame{i: 1, j: r.N, parent: "", side: SideRoot})

	var (
		f    frame
		root int
	)
	for len(stack) > 0 {
		// Pop the most recently pushed interval.
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Empty interval [i, i-1]: exactly the virtual key d_{i-1},
		// here addressed as d_j since j == i-1. Virtual keys are
		// always leaves — emit and stop descending.
		if f.i > f.j {
			out = append(out, Placement{Child: r.Gaps[f.j], Parent: f.parent, Side: f.side})
			continue
		}

		// Non-empty interval: its optimal root is Roots[i][j].
		root = r.Roots[f.i][f.j]
		out = append(out, Placement{Child: r.Keys[root], Parent: f.parent, Side: f.side})

		// Right pushed first so the left subtree pops (and emits) first.
		stack = append(stack, frame{i: root + 1, j: f.j, parent: r.Keys[root], side: SideRight})
		stack = append(stack, frame{i: f.i, j: root - 1, parent: r.Keys[root], side: SideLeft})
	}

	return out
}
