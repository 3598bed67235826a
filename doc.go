// Package pids finds small positive influence dominating sets: vertex
// subsets S of an undirected graph in which every vertex has at least
// ⌈deg(v)/2⌉ neighbours in S.
//
// 🚀 What is in the box?
//
//	A single-process optimiser built from small packages:
//		• graph       — immutable integer-indexed graph + "n m / u v" loader
//		• builder     — deterministic topologies for fixtures and instances
//		• coverage    — incremental coverage tracker with add/remove/switch operators
//		• greedy      — greedy construction and minimal pruning
//		• localsearch — hill climbing and simulated annealing
//		• tabu        — tabu search with tenure memory and aspiration
//		• clock       — CPU and wall clocks for time budgets
//		• stats       — summary statistics over applications
//		• metrics     — Prometheus collectors and textfile export
//		• config      — YAML configuration with validation
//		• app         — repeated applications, logging, metrics, summary line
//		• cmd/pids    — command-line front end
//
// ✨ How the pieces fit
//
//	graph → greedy → {hill climbing | annealing | tabu} → members + score → stats
//
// Every strategy works on one coverage.State, which keeps the popularity of
// each vertex (its number of selected neighbours) in step with the solution,
// so each move is re-scored in O(degree) time.
//
// Quick ASCII example (path 1-2-3-4, 1-indexed as in the input format):
//
//	1───2───3───4
//	    ■   ■
//
// {2,3} is a PIDS: vertices 1 and 4 need one selected neighbour, 2 and 3 need one each.
//
//	go install github.com/katalvlaran/pids/cmd/pids@latest
package pids
