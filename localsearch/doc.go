// Package localsearch improves a PIDS candidate with hill climbing and
// simulated annealing over the add / remove / switch neighbourhood of a
// coverage.State scored with the deficit objective.
//
// HillClimb is deterministic steepest descent: every step probes the whole
// neighbourhood in a fixed order and commits the lowest-scoring candidate if
// it strictly improves the current score.
//
// Anneal samples one random operator per iteration from a Source. Improving
// moves are always kept; worsening ones survive with a temperature-dependent
// probability and are otherwise undone through the inverse operator. The
// best configuration seen along the chain is returned.
//
// Concurrency: a State and a Source are single-goroutine objects. Run
// independent searches on independent States.
package localsearch
