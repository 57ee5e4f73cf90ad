// Package knapsack - input validation for the solver.
//
// Validation runs once, at construction and at the Solve boundary; the
// recursive search itself assumes validated input. Deterministic,
// side-effect free, sentinel errors only.
package knapsack

import (
	"fmt"

	"github.com/katalvlaran/coinpack/coin"
)

// validateDenominations checks that the set is non-empty and every
// denomination carries strictly positive value and weight.
//
// Complexity: O(d) time, no allocations.
func validateDenominations(coins []coin.Coin) error {
	if len(coins) == 0 {
		return ErrNoDenominations
	}
	for i, c := range coins {
		if c.Value <= 0 || c.Weight <= 0 {
			return fmt.Errorf("denomination %d is %v: %w", i, c, ErrBadDenomination)
		}
	}

	return nil
}

// validateBudget rejects negative carrying budgets. Zero is valid and
// yields an empty combination.
func validateBudget(budget int) error {
	if budget < 0 {
		return fmt.Errorf("budget %d: %w", budget, ErrNegativeBudget)
	}

	return nil
}
