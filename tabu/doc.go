// Package tabu implements a tabu search over feasible positive influence
// dominating sets.
//
// Each iteration scans every insertion of a non-member and every removal of
// a member that keeps all of its neighbours covered, scores the resulting
// configuration with
//
//	objective = SizeWeight·|S| + Σ_u pop(u)/deg(u)
//
// and commits the lowest-scoring admissible candidate. A candidate is
// admissible when its tenure has expired or when it would beat the global
// best (aspiration). The committed move is then forbidden for Tenure
// iterations under a key chosen by the KeyPolicy.
//
// The search stops on a time budget read from a clock.Clock, on context
// cancellation or after MaxIterations, and always returns the global best,
// which never worsens during a run.
package tabu
