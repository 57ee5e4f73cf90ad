// Package coin defines the data model for coin-selection optimization:
// denominations, combinations, and density ordering.
//
// What:
//
//   - Coin is an immutable (Value, Weight) pair; a denomination and a coin
//     instance share the same shape, and a Combination may repeat a
//     denomination any number of times.
//   - Combination is an ordered sequence of coins with strict value
//     semantics: Clone produces an independent copy and Extend returns a
//     new sequence, so extending one candidate never mutates a sibling.
//   - SortByDensity orders denominations by value per weight unit,
//     descending — best bang for your buck first.
//   - Australian returns the reference denomination table (AUD face values
//     in cents, masses in decigrams).
//
// Why:
//
//   - The search engine in knapsack/ passes partial combinations between
//     recursive calls and caches them; without copy discipline a cached
//     result could be silently rewritten by a later append.
//   - Density ordering decides which of several equally valuable
//     combinations surfaces first; it never changes the optimal value.
//
// Complexity:
//
//   - TotalValue / TotalWeight / Clone: O(n) over the combination length.
//   - SortByDensity: O(n log n).
//
// See knapsack/ for the solver consuming these types.
package coin
