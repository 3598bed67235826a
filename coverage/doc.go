// Package coverage implements the incremental evaluation model shared by every
// PIDS search strategy: the Coverage Tracker (per-vertex popularity counters and
// a cached objective) and the Operator Layer (add / remove / switch moves).
//
// A vertex u is covered when at least ⌈deg(u)/2⌉ of its neighbours are
// selected, i.e. 2·popularity[u] ≥ deg(u). Isolated vertices are always covered.
//
// Objectives (lower is better):
//
//   - Deficit:  Σ_{v∈S} deg(v) + n·|uncovered|. The n-per-vertex penalty
//     dominates any single move's degree adjustment, so the search prefers
//     "nobody under-covered" over "smaller degree mass".
//   - Coverage: Σ_u popularity[u]/deg(u) over deg(u)>0, the summed neighbour
//     coverage ratio. The tabu engine combines it with a size weight.
//
// Operators:
//
//   - TryAdd(v), TryRemove(v), TrySwitch(out, in), Apply(Move)
//     return an Outcome: either applied with the objective delta, or rejected
//     with a Reason. Rejections leave the State untouched.
//   - CanRemove(v) is the feasibility guard: false when some neighbour would
//     drop below its threshold.
//
// Invariants (hold after every operator call):
//
//   - popularity[v] == |N(v) ∩ S| for every v.
//   - Uncovered() == |{u : 2·popularity[u] < deg(u)}|.
//   - An operator followed by its inverse restores solution, popularity and
//     Score() exactly (bit-for-bit, for both objectives).
//
// Complexity: every operator is O(deg(v)) for both objectives. Coverage
// keeps lcm·Σ popularity[u]/deg(u) as an exact integer, lcm being the least
// common multiple of the degrees. On graphs where n·lcm would pass 2^62 it
// falls back to per-degree accumulators and each operator costs an extra
// O(distinct degrees).
//
// A State is not safe for concurrent use.
package coverage
