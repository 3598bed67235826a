package graph

import "errors"

// Sentinel errors for graph construction and loading.
var (
	// ErrInvalidGraphFormat indicates malformed or out-of-range edge data.
	ErrInvalidGraphFormat = errors.New("graph: invalid graph format")

	// ErrFileUnavailable indicates that the input path could not be opened.
	ErrFileUnavailable = errors.New("graph: file unavailable")
)

// MaxNodes is the largest vertex count New and Read accept.
const MaxNodes = 1 << 26

// Edge is an undirected pair of 0-indexed endpoints.
type Edge struct {
	U int
	V int
}

// Graph is an immutable undirected simple graph over vertices 0..n-1.
type Graph struct {
	n       int
	m       int
	offsets []int // len n+1; neighbours of v live in adj[offsets[v]:offsets[v+1]]
	adj     []int
	maxDeg  int
}
