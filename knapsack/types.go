// Package knapsack defines core types, options, and sentinel errors for
// the coin-selection solver.
package knapsack

import (
	"errors"

	"github.com/katalvlaran/coinpack/coin"
)

// Sentinel errors returned by the knapsack solver.
var (
	// ErrNoDenominations indicates that the denomination set is empty.
	ErrNoDenominations = errors.New("knapsack: denomination set is empty")

	// ErrBadDenomination indicates a denomination with non-positive value
	// or non-positive weight. Validated up front: the search assumes
	// strictly positive denominations.
	ErrBadDenomination = errors.New("knapsack: denomination value and weight must be positive")

	// ErrNegativeBudget indicates that Solve was called with a negative
	// weight budget.
	ErrNegativeBudget = errors.New("knapsack: weight budget must be non-negative")

	// ErrNoCandidates indicates that BestValue received an empty candidate
	// sequence.
	ErrNoCandidates = errors.New("knapsack: no candidate combinations")

	// ErrInfeasible indicates that no combination fits: the current coin
	// alone exceeds the remaining weight. This is a normal outcome of the
	// low-level search, not a fault.
	ErrInfeasible = errors.New("knapsack: no feasible combination")
)

// Result holds the outcome of a solve.
type Result struct {
	// Coins is the chosen combination, most deeply placed coin first.
	// Empty (not nil-checked by callers) when no coin fits the budget.
	Coins coin.Combination

	// Value is the total face value of Coins.
	Value int

	// Weight is the total carried weight of Coins. Always ≤ the budget
	// passed to Solve.
	Weight int
}

// Options configures the solver.
//
// DensityOrder – sort denominations by descending value density before
// searching. Ordering changes which of several equally valuable
// combinations is discovered first; it never changes the optimal value.
// UseMemo – cache search results keyed by (coin, remaining weight).
// Disabling the memo yields identical results at exponential cost; it
// exists for consistency tests and benchmarks.
type Options struct {
	DensityOrder bool // order denominations by value density, best first
	UseMemo      bool // cache (coin, remaining weight) search states
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithDensityOrder controls density ordering of the denomination set.
// Default is true (best value per weight unit first).
func WithDensityOrder(enabled bool) Option {
	return func(o *Options) {
		o.DensityOrder = enabled
	}
}

// WithoutMemo disables result caching. Solve still returns the same
// Result; only the amount of recomputation changes.
func WithoutMemo() Option {
	return func(o *Options) {
		o.UseMemo = false
	}
}

// DefaultOptions returns the standard solver configuration:
// density ordering on, memoization on.
func DefaultOptions() Options {
	return Options{
		DensityOrder: true,
		UseMemo:      true,
	}
}
