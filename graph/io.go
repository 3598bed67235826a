package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// edgePrealloc caps the edge buffer sized from the advisory header count.
const edgePrealloc = 1 << 16

const (
	methodRead     = "Read"
	methodLoadFile = "LoadFile"
	methodWrite    = "Write"
)

// Read parses the text instance format (see package doc) from r.
// Endpoints are converted from 1-indexed to 0-indexed.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, bool, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, false, fmt.Errorf("%s: reading %s: %w", methodRead, what, err)
			}
			return 0, false, nil
		}
		x, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, fmt.Errorf("%s: %s %q is not an integer: %w",
				methodRead, what, sc.Text(), ErrInvalidGraphFormat)
		}

		return x, true, nil
	}

	n, ok, err := next("node count")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: missing header: %w", methodRead, ErrInvalidGraphFormat)
	}
	if n < 0 || n > MaxNodes {
		return nil, fmt.Errorf("%s: node count %d not in [0,%d]: %w", methodRead, n, MaxNodes, ErrInvalidGraphFormat)
	}
	m, ok, err := next("edge count")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: missing edge count: %w", methodRead, ErrInvalidGraphFormat)
	}
	edges := make([]Edge, 0, min(max(m, 0), edgePrealloc))
	for {
		u, ok, err := next("endpoint")
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		v, ok, err := next("endpoint")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%s: dangling endpoint %d after %d pairs: %w",
				methodRead, u, len(edges), ErrInvalidGraphFormat)
		}
		edges = append(edges, Edge{U: u - 1, V: v - 1})
	}

	g, err := New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}

	return g, nil
}

// LoadFile opens path and parses it with Read.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %v: %w", methodLoadFile, path, err, ErrFileUnavailable)
	}
	defer f.Close()

	return Read(f)
}

// Write emits g in the text instance format, one 1-indexed pair per line.
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U+1, e.V+1); err != nil {
			return fmt.Errorf("%s: %w", methodWrite, err)
		}
	}

	return bw.Flush()
}
