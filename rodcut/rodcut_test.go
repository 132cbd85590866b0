package rodcut_test

import (
	"testing"

	"github.com/katalvlaran/dpkit/rodcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The CLRS price list: a piece of length i earns classicPrices[i-1].
var classicPrices = []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30}

// TestSolve_Length7: revenue 18, cut as 1+6.
func TestSolve_Length7(t *testing.T) {
	res, err := rodcut.Solve(classicPrices, 7)
	require.NoError(t, err)

	assert.Equal(t, 18, res.Revenue)
	assert.Equal(t, []int{1, 6}, res.Cuts())
}

// TestSolve_Length10: a single uncut piece is optimal.
func TestSolve_Length10(t *testing.T) {
	res, err := rodcut.Solve(classicPrices, 10)
	require.NoError(t, err)

	assert.Equal(t, 30, res.Revenue)
	assert.Equal(t, []int{10}, res.Cuts())
}

// TestSolve_LongerThanPriceTable: length 13 exceeds the listed pieces;
// the optimum combines 3 + 10 for 38.
func TestSolve_LongerThanPriceTable(t *testing.T) {
	res, err := rodcut.Solve(classicPrices, 13)
	require.NoError(t, err)

	assert.Equal(t, 38, res.Revenue)
	assert.Equal(t, []int{3, 10}, res.Cuts())
}

// TestSolve_ZeroLength: nothing to cut, nothing earned.
func TestSolve_ZeroLength(t *testing.T) {
	res, err := rodcut.Solve(classicPrices, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Revenue)
	assert.Empty(t, res.Cuts())
}

// TestSolve_EmptyPriceTable: no priced pieces means zero revenue for
// any length, not an error.
func TestSolve_EmptyPriceTable(t *testing.T) {
	res, err := rodcut.Solve(nil, 5)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Revenue)
	assert.Empty(t, res.Cuts())
}

// TestSolve_BadInput rejects negative lengths and prices.
func TestSolve_BadInput(t *testing.T) {
	_, err := rodcut.Solve(classicPrices, -1)
	assert.ErrorIs(t, err, rodcut.ErrBadLength)

	_, err = rodcut.Solve([]int{1, -5}, 3)
	assert.ErrorIs(t, err, rodcut.ErrBadPrice)
}

// TestSolve_CutsSumToLength: on the classic prices every optimal
// cutting uses the whole rod (all prices positive).
func TestSolve_CutsSumToLength(t *testing.T) {
	for length := 1; length <= 20; length++ {
		res, err := rodcut.Solve(classicPrices, length)
		require.NoError(t, err)

		sum := 0
		for _, piece := range res.Cuts() {
			sum += piece
		}
		assert.Equal(t, length, sum, "cuts for length %d must cover the rod", length)
	}
}
