package knapsack

import (
	"github.com/katalvlaran/coinpack/coin"
)

// memoKey identifies a search state: the coin just placed and the weight
// still available before placing it. The composite of the raw coin fields
// with the remaining weight is collision-free for every input range —
// two keys compare equal only when the states are genuinely identical.
// (The arithmetic alternative, hashing the coin into a prime and folding
// in a power of the remaining weight, silently collides for large
// budgets; a struct key removes the hazard entirely.)
type memoKey struct {
	value     int
	weight    int
	remaining int
}

// memoEntry is a cached search outcome: either "no feasible extension"
// (feasible=false) or the best combination for the keyed state, with the
// key's own coin as its last element.
type memoEntry struct {
	comb     coin.Combination
	feasible bool
}

// Solver explores coin combinations under a weight budget. It owns an
// immutable denomination list and an explicit memo; construct one per
// configuration. Not safe for concurrent use.
type Solver struct {
	options []coin.Coin           // denomination set, ordered for branching
	opts    Options               // solver configuration
	memo    map[memoKey]memoEntry // search state cache
}

// New builds a Solver over the given denomination set.
//
// The set is validated (ErrNoDenominations, ErrBadDenomination) and copied,
// so later mutation of the caller's slice cannot affect the solver. With
// DensityOrder enabled (the default) the copy is sorted by descending value
// density, which decides only which of several equally valuable
// combinations surfaces first.
func New(denominations []coin.Coin, opts ...Option) (*Solver, error) {
	if err := validateDenominations(denominations); err != nil {
		return nil, err
	}

	options := DefaultOptions()
	for _, fn := range opts {
		fn(&options)
	}

	owned := make([]coin.Coin, len(denominations))
	copy(owned, denominations)
	if options.DensityOrder {
		coin.SortByDensity(owned)
	}

	return &Solver{
		options: owned,
		opts:    options,
		memo:    make(map[memoKey]memoEntry),
	}, nil
}

// Denominations returns the solver's branching order (a copy).
func (s *Solver) Denominations() []coin.Coin {
	out := make([]coin.Coin, len(s.options))
	copy(out, s.options)

	return out
}

// ResetMemo discards all cached search states. Results of subsequent
// solves are unchanged; only recomputation cost differs.
func (s *Solver) ResetMemo() {
	s.memo = make(map[memoKey]memoEntry)
}

// Solve returns the maximum-value combination whose total weight does not
// exceed budget.
//
// The search is seeded with the zero-value root sentinel, which is
// stripped from the reported combination before totals are computed. A
// non-negative budget always succeeds: when no denomination fits, the
// result simply carries an empty combination with zero totals.
//
// Errors: ErrNegativeBudget.
//
// Recursion depth is bounded by budget divided by the smallest
// denomination weight; for realistic budgets the stack stays shallow.
func (s *Solver) Solve(budget int) (Result, error) {
	if err := validateBudget(budget); err != nil {
		return Result{}, err
	}

	comb, err := s.Search(coin.Root(), budget)
	if err != nil {
		return Result{}, err
	}

	// Strip the root sentinel: the current coin is appended after its
	// extension, so the sentinel is always the final element.
	comb = comb[:len(comb)-1]

	return Result{
		Coins:  comb,
		Value:  comb.TotalValue(),
		Weight: comb.TotalWeight(),
	}, nil
}

// Search returns the best combination reachable from the state (cur,
// remaining): the most valuable multiset that fits in remaining weight
// and ends with cur itself. The returned combination lists the most
// deeply placed coin first and cur last.
//
// Contract (cur is the root sentinel or one of the solver's denominations):
//   - cur.Weight >  remaining → ErrInfeasible, no combination.
//   - cur.Weight == remaining → [cur]: a perfect fit ends the branch.
//   - otherwise every denomination is tried against the leftover weight;
//     if none fits, [cur] stands alone, else the best extension wins.
//
// The result is always an independent copy: mutating it cannot corrupt
// the memo or sibling candidates.
func (s *Solver) Search(cur coin.Coin, remaining int) (coin.Combination, error) {
	key := memoKey{value: cur.Value, weight: cur.Weight, remaining: remaining}
	if s.opts.UseMemo {
		if hit, ok := s.memo[key]; ok {
			if !hit.feasible {
				return nil, ErrInfeasible
			}

			return hit.comb.Clone(), nil
		}
	}

	comb, err := s.explore(cur, remaining)
	if s.opts.UseMemo {
		s.memo[key] = memoEntry{comb: comb, feasible: err == nil}
	}
	if err != nil {
		return nil, err
	}

	return comb.Clone(), nil
}

// explore computes a fresh result for the state (cur, remaining); Search
// handles the memo around it. The returned combination is owned by the
// caller (and, via Search, by the memo).
func (s *Solver) explore(cur coin.Coin, remaining int) (coin.Combination, error) {
	// Base case 1: the current coin alone does not fit.
	if cur.Weight > remaining {
		return nil, ErrInfeasible
	}

	// Base case 2: perfect fit, no room for anything more.
	if cur.Weight == remaining {
		return coin.Combination{cur}, nil
	}

	// Inductive case: leftover weight may admit another coin.
	leftover := remaining - cur.Weight
	candidates := make([]coin.Combination, 0, len(s.options))
	for _, next := range s.options {
		extension, err := s.Search(next, leftover)
		if err != nil {
			continue // this denomination cannot fit, try the next
		}
		candidates = append(candidates, extension)
	}

	// No denomination fits the leftover: the current coin stands alone.
	if len(candidates) == 0 {
		return coin.Combination{cur}, nil
	}

	best, err := BestValue(candidates)
	if err != nil {
		return nil, err
	}

	return best.Extend(cur), nil
}

// BestValue returns an independent copy of the most valuable candidate.
//
// Tie-break is a documented total order: greatest total value first, then
// fewest coins, then earliest position in the input slice. Callers may
// rely on this order being deterministic. The input candidates are never
// mutated.
//
// Errors: ErrNoCandidates on an empty input.
//
// Complexity: O(k·L) for k candidates of length ≤ L.
func BestValue(candidates []coin.Combination) (coin.Combination, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	var (
		bestIdx   = 0
		bestValue = candidates[0].TotalValue()
	)
	for i := 1; i < len(candidates); i++ {
		value := candidates[i].TotalValue()
		switch {
		case value > bestValue:
			bestIdx, bestValue = i, value
		case value == bestValue && len(candidates[i]) < len(candidates[bestIdx]):
			bestIdx = i
		}
	}

	return candidates[bestIdx].Clone(), nil
}
