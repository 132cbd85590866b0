package lcs

// Direction marks where each length-table cell got its value from; the
// reconstruction walks these arrows back from (m, n).
type Direction uint8

const (
	// None fills row 0 and column 0 (empty-prefix base cases).
	None Direction = iota

	// Diagonal marks a character match: c[i][j] = c[i-1][j-1] + 1.
	Diagonal

	// Up marks inheriting from the shorter X prefix: c[i][j] = c[i-1][j].
	Up

	// Left marks inheriting from the shorter Y prefix: c[i][j] = c[i][j-1].
	Left
)

// Result holds the outcome of one Solve call. Tables are 1-based with
// an extra zero row/column for the base cases; treat them as read-only.
type Result struct {
	// Length of the longest common subsequence, Lengths[m][n].
	Length int

	// Lengths is the (m+1)×(n+1) prefix-length table.
	Lengths [][]int

	// Arrows is the (m+1)×(n+1) direction table used by Subsequence.
	Arrows [][]Direction

	x string // first input, kept for reconstruction
}

// Solve fills the length and arrow tables for x and y bottom-up.
// Empty inputs are valid and yield a zero-length result, never an error.
//
// Tie-break: when the two inherit branches are equally long, the "up"
// branch (shorter x prefix) wins via ">=", matching the textbook
// LCS-LENGTH and keeping reconstruction deterministic.
//
// Complexity: O(m·n) time and memory.
func Solve(x, y string) *Result {
	m, n := len(x), len(y)

	c := make([][]int, m+1)
	b := make([][]Direction, m+1)
	for i := range c {
		c[i] = make([]int, n+1)
		b[i] = make([]Direction, n+1)
	}
	// Row 0 and column 0 stay zero / None: the LCS against an empty
	// prefix is empty.

	var i, j int
	for i = 1; i <= m; i++ {
		for j = 1; j <= n; j++ {
			switch {
			case x[i-1] == y[j-1]:
				c[i][j] = c[i-1][j-1] + 1
				b[i][j] = Diagonal
			case c[i-1][j] >= c[i][j-1]:
				c[i][j] = c[i-1][j]
				b[i][j] = Up
			default:
				c[i][j] = c[i][j-1]
				b[i][j] = Left
			}
		}
	}

	return &Result{
		Length:  c[m][n],
		Lengths: c,
		Arrows:  b,
		x:       x,
	}
}

// Subsequence replays the arrow table into one optimal common
// subsequence, in order. Iterative backtrack from (m, n); characters
// are collected in reverse and flipped once at the end.
//
// Complexity: O(m+n) time, O(Length) memory.
func (r *Result) Subsequence() string {
	i, j := len(r.Arrows)-1, len(r.Arrows[0])-1

	buf := make([]byte, 0, r.Length)
	for i > 0 && j > 0 {
		switch r.Arrows[i][j] {
		case Diagonal:
			buf = append(buf, r.x[i-1])
			i--
			j--
		case Up:
			i--
		default: // Left
			j--
		}
	}
	// reverse in place
	for l, rr := 0, len(buf)-1; l < rr; l, rr = l+1, rr-1 {
		buf[l], buf[rr] = buf[rr], buf[l]
	}

	return string(buf)
}
