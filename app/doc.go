// Package app drives repeated, independent applications of one search
// strategy on a loaded instance and reports per-application results plus a
// summary line of solution sizes and times.
//
// Strategies:
//
//	greedy  greedy construction only
//	hill    greedy start, then steepest-descent hill climbing
//	anneal  greedy start, then simulated annealing
//	tabu    pruned greedy start, then time-bounded tabu search
//
// All applications of a process draw from one seeded random source, so a
// fixed seed reproduces the whole run.
package app
