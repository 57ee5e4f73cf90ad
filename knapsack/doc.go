// Package knapsack finds the maximum-value multiset of coins whose total
// weight fits a carrying budget, using memoized depth-first search.
//
// What:
//
//   - Solver owns an immutable denomination list and a per-instance memo;
//     Solve(budget) returns the best reachable Combination and its totals.
//   - The search explores an implicit state graph where a state is
//     (last coin placed, remaining weight) and every edge places one more
//     coin of some denomination; terminal states are exact weight
//     exhaustion or "no denomination fits".
//   - BestValue selects the most valuable among candidate combinations
//     with a documented, deterministic tie-break.
//
// Why:
//
//   - Unbounded coin repetition makes greedy-by-density wrong in general;
//     the exhaustive search with memoization stays exact while bounding
//     the number of distinct evaluated states.
//   - The memo lives on the Solver, never in package state, so tests can
//     construct fresh, isolated instances per case.
//
// Complexity:
//
//   - Time:   O(S·d) where S = distinct (denomination, remaining) states
//     ≤ (d+1)·(budget+1) and d = number of denominations.
//   - Memory: O(S·L) for cached combinations of length L ≤ budget/minWeight.
//   - Recursion depth: bounded by budget/minWeight.
//
// Options:
//
//   - WithDensityOrder(false) keeps the caller's denomination order instead
//     of sorting by descending value density.
//   - WithoutMemo() disables caching; results are identical, only slower.
//
// Errors:
//
//   - ErrNoDenominations: empty denomination set.
//   - ErrBadDenomination: a denomination with value ≤ 0 or weight ≤ 0.
//   - ErrNegativeBudget:  Solve called with budget < 0.
//   - ErrNoCandidates:    BestValue called with no candidates.
//   - ErrInfeasible:      low-level search infeasibility (current coin
//     alone exceeds the remaining weight).
//
// A Solver is not safe for concurrent use: the memo is single-writer,
// single-reader state guarded only by the single-goroutine contract.
package knapsack
