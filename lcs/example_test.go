package lcs_test

import (
	"fmt"

	"github.com/katalvlaran/dpkit/lcs"
)

// ExampleSolve reconstructs the textbook subsequence.
func ExampleSolve() {
	res := lcs.Solve("ABCBDAB", "BDCABA")
	fmt.Println(res.Length, res.Subsequence())
	// Output:
	// 4 BCBA
}

// ExampleSolve_dna compares two DNA fragments base by base.
func ExampleSolve_dna() {
	res := lcs.Solve("ACCGGTCGAGT", "GTCGTTCGGAAT")
	fmt.Printf("common bases: %d (%s)\n", res.Length, res.Subsequence())
	// Output:
	// common bases: 7 (CGTCGAT)
}
