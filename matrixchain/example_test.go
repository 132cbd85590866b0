package matrixchain_test

import (
	"fmt"

	"github.com/katalvlaran/dpkit/matrixchain"
)

// ExampleSolve shows the classic six-matrix chain: 15125 scalar
// multiplications are enough when the chain is split at A3.
func ExampleSolve() {
	res, err := matrixchain.Solve([]int{30, 35, 15, 5, 10, 20, 25})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Cost)
	fmt.Println(res.Parenthesization())
	// Output:
	// 15125
	// ((A1(A2A3))((A4A5)A6))
}
