package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/dpkit/knapsack"
)

// ExampleSolve packs a 50-unit knapsack from three candidates and
// lists the chosen items.
func ExampleSolve() {
	items := []knapsack.Item{
		{Weight: 10, Value: 60},
		{Weight: 20, Value: 100},
		{Weight: 30, Value: 120},
	}

	res, err := knapsack.Solve(50, items)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("value:", res.Value)
	for _, i := range res.Selected() {
		fmt.Printf("item %d (weight %d, value %d)\n", i, items[i].Weight, items[i].Value)
	}
	// Output:
	// value: 220
	// item 1 (weight 20, value 100)
	// item 2 (weight 30, value 120)
}
