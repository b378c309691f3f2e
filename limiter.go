package chained

import (
	"sync/atomic"
	"unsafe"
)

// MemLimiter approves allocations before a container makes them. Containers
// call Reserve with the byte cost of each node, bucket array or buffer they
// are about to allocate and Release when that storage is popped or freed.
//
// Reserve returns ErrOutOfMemory (or another error) to deny the allocation;
// the denied operation then fails without committing any state.
type MemLimiter interface {
	Reserve(bytes uintptr) error
	Release(bytes uintptr)
}

// BudgetLimiter is a MemLimiter with a fixed byte budget. A single limiter
// may be shared by any number of containers, including containers running on
// different goroutines; the used counter is the only point of contention and
// is padded to keep it on its own cache line.
type BudgetLimiter struct {
	//lint:ignore U1000 prevents false sharing
	pad [(CacheLineSize - unsafe.Sizeof(struct {
		limit uintptr
		used  atomic.Uintptr
	}{})%CacheLineSize) % CacheLineSize]byte

	limit uintptr
	used  atomic.Uintptr
}

// NewBudgetLimiter creates a limiter that approves reservations up to limit
// bytes in total.
func NewBudgetLimiter(limit uintptr) *BudgetLimiter {
	return &BudgetLimiter{limit: limit}
}

// Reserve accounts for bytes against the budget. It returns ErrOutOfMemory
// if granting the reservation would exceed the limit.
func (b *BudgetLimiter) Reserve(bytes uintptr) error {
	for {
		used := b.used.Load()
		if b.limit-used < bytes {
			return ErrOutOfMemory
		}
		if b.used.CompareAndSwap(used, used+bytes) {
			return nil
		}
	}
}

// Release returns previously reserved bytes to the budget. Releasing more
// than is currently reserved clamps to zero.
func (b *BudgetLimiter) Release(bytes uintptr) {
	for {
		used := b.used.Load()
		n := bytes
		if n > used {
			n = used
		}
		if b.used.CompareAndSwap(used, used-n) {
			return
		}
	}
}

// Used reports the bytes currently reserved.
func (b *BudgetLimiter) Used() uintptr {
	return b.used.Load()
}

func reserve(mem MemLimiter, bytes uintptr) error {
	if mem == nil {
		return nil
	}
	return mem.Reserve(bytes)
}

func release(mem MemLimiter, bytes uintptr) {
	if mem != nil {
		mem.Release(bytes)
	}
}
