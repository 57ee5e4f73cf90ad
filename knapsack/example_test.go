package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/coinpack/coin"
	"github.com/katalvlaran/coinpack/knapsack"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolver_Solve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The reference purse: every Australian coin denomination, and a pocket
//	that carries at most 300 weight units (30 g).
//
// Outcome:
//
//	Four $2 coins (light for their value) plus one 5c coin to use up the
//	leftover — 805 cents at weight 292.
//
// Complexity: O(states × denominations) with the memo enabled.
func ExampleSolver_Solve() {
	solver, err := knapsack.New(coin.Australian())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := solver.Solve(300)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("Total value:", res.Value)
	fmt.Println("Total weight:", res.Weight)
	// Output:
	// Total value: 805
	// Total weight: 292
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolver_Solve_nothingFits
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A budget lighter than the lightest coin. The solve still succeeds;
//	the combination is simply empty.
func ExampleSolver_Solve_nothingFits() {
	solver, err := knapsack.New(coin.Australian())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, _ := solver.Solve(20)
	fmt.Println("coins:", len(res.Coins), "value:", res.Value)
	// Output:
	// coins: 0 value: 0
}

// ExampleBestValue demonstrates the deterministic tie-break: equal value,
// fewer coins first.
func ExampleBestValue() {
	twoCoins := coin.Combination{{Value: 3, Weight: 2}, {Value: 3, Weight: 2}}
	oneCoin := coin.Combination{{Value: 6, Weight: 5}}

	best, err := knapsack.BestValue([]coin.Combination{twoCoins, oneCoin})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(best)
	// Output:
	// [Coin(v=6, w=5)]
}
