//go:build !unix

package clock

// NewCPU falls back to wall time where getrusage is not available.
func NewCPU() Clock {
	return NewWall()
}
