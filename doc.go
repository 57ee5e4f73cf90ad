// Package coinpack finds the most valuable pocketful of coins you can
// carry under a fixed weight budget — an unbounded coin-selection
// optimizer built around a memoized depth-first search.
//
// 🚀 What is coinpack?
//
//	A small, focused library plus CLI that brings together:
//		• Coin model: immutable value/weight denominations, combinations
//		  with strict copy semantics, density ordering
//		• Solver: memoized recursive search over (coin, remaining weight)
//		  states with a collision-free composite cache key
//		• Best-value selection with a documented, deterministic tie-break
//		• TOML purse configuration and a cobra-driven CLI
//
// ✨ Why choose coinpack?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same purse, same budget, same answer, every run
//   - Testable – the memo is owned by a Solver instance, never a hidden global
//   - Pure Go core – no cgo; only the CLI layer pulls in terminal styling
//
// Under the hood, everything is organized under a few subpackages:
//
//	coin/     — Coin, Combination, density ordering, the Australian table
//	knapsack/ — the memoized search engine and best-value comparator
//	config/   — TOML purse files (denominations + budget) with validation
//	cmd/      — the coinpack CLI
//
// Quick example:
//
//	solver, _ := knapsack.New(coin.Australian())
//	res, _ := solver.Solve(300)
//	fmt.Println(res.Value, res.Weight) // 805 292
//
// Dive into the per-package doc comments for contracts, complexity notes,
// and worked examples.
//
//	go get github.com/katalvlaran/coinpack
package coinpack
