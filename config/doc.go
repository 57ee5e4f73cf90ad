// Package config loads purse configurations — a weight budget plus a
// denomination table — from TOML files and validates them before the
// solver ever runs.
//
// File format:
//
//	budget = 300
//
//	[[denomination]]
//	value = 1
//	weight = 26
//
//	[[denomination]]
//	value = 200
//	weight = 66
//
// Validation is the external collaborator's duty in this system: the
// search core assumes strictly positive denominations and a non-negative
// budget, so Load rejects anything else with a sentinel error before a
// Purse reaches the solver.
//
// Errors:
//
//   - ErrNoDenominations: the file defines no denominations.
//   - ErrBadDenomination: a denomination with value ≤ 0 or weight ≤ 0.
//   - ErrNegativeBudget:  budget < 0.
//
// Parse errors from the TOML layer are wrapped and returned as-is.
package config
