// Package clock measures the running time of one search application.
//
// A Clock starts counting when it is created. NewCPU reports the process's
// consumed CPU time (user + system), which is insensitive to scheduling
// noise on loaded machines; NewWall reports elapsed wall time.
package clock

import "time"

// Clock reports the time consumed since it was created.
type Clock interface {
	Elapsed() time.Duration
}

// Func adapts a plain function to Clock.
type Func func() time.Duration

// Elapsed implements Clock.
func (f Func) Elapsed() time.Duration { return f() }

type wall struct {
	start time.Time
}

// NewWall returns a wall-clock Clock.
func NewWall() Clock {
	return wall{start: time.Now()}
}

func (w wall) Elapsed() time.Duration { return time.Since(w.start) }

// Kind names a clock source in configuration.
type Kind string

const (
	// CPU selects NewCPU.
	CPU Kind = "cpu"
	// Wall selects NewWall.
	Wall Kind = "wall"
)

// New returns a fresh Clock of the given kind; unknown kinds fall back to CPU.
func New(k Kind) Clock {
	if k == Wall {
		return NewWall()
	}

	return NewCPU()
}
