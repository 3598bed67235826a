//go:build unix

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

type cpu struct {
	start time.Duration
}

// NewCPU returns a Clock over the process's consumed CPU time.
// If getrusage is unavailable it degrades to wall time.
func NewCPU() Clock {
	start, ok := processCPU()
	if !ok {
		return NewWall()
	}

	return cpu{start: start}
}

func (c cpu) Elapsed() time.Duration {
	now, _ := processCPU()

	return now - c.start
}

// processCPU returns user + system time of the calling process.
func processCPU() (time.Duration, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}

	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), true
}
