package chained

import "errors"

var (
	// ErrOutOfMemory is returned when a configured MemLimiter denies an
	// allocation. The failing operation commits nothing: the container is
	// left in the state it had immediately before the denied reservation.
	ErrOutOfMemory = errors.New("chained: out of memory")

	// ErrBadCapacity is returned by NewVecOfCap for a capacity below 1.
	ErrBadCapacity = errors.New("chained: capacity must be at least 1")
)
