// Package graph provides the immutable, integer-indexed undirected graph that
// every PIDS search strategy reads from.
//
// Vertices are dense indices 0..n-1. Adjacency is stored in compressed form
// (one offsets slice plus one flat neighbour slice), with every neighbour list
// sorted ascending so that iteration order is deterministic across runs and
// platforms.
//
// Construction:
//
//   - New(n, edges)   - build from an in-memory edge list (0-indexed).
//   - Read(r)         - parse the text instance format (1-indexed pairs).
//   - LoadFile(path)  - open a file and Read it.
//   - Write(w, g)     - emit g in the same text format.
//
// Text format:
//
//	<nodes> <edges>
//	<u> <v>
//	<u> <v>
//	...
//
// Endpoints are 1-indexed. The edge count in the header is advisory: pairs are
// read until EOF. Duplicate and mirrored pairs collapse into one undirected edge.
//
// Errors:
//
//	ErrInvalidGraphFormat - malformed header/pairs, node count above MaxNodes,
//	                        endpoint out of range, self-loop.
//	ErrFileUnavailable    - the input path cannot be opened.
//
// Complexity:
//
//   - New:       O(n + m log m) time, O(n + m) space.
//   - Neighbors: O(1), returns a read-only view into shared storage.
//   - HasEdge:   O(log deg(u)).
//
// A *Graph is never mutated after construction and is safe for concurrent reads.
package graph
