// Package greedy builds an initial positive influence dominating set.
//
// Construct starts from the empty solution and repeatedly inserts the vertex
// that lifts the largest number of under-covered neighbours over their
// ⌈deg/2⌉ threshold, breaking ties by the lowest id, until every vertex is
// covered. Prune then drops, in ascending id order, every member whose
// removal keeps all neighbours covered, yielding a minimal feasible set.
//
// Both routines are deterministic: the same graph always yields the same
// solution.
package greedy
