package chained

import "unsafe"

const (
	initialVecCapacity = 100
	vecGrowthFactor    = 1.5
)

// VecOf is a growable array in the family of Java's ArrayList, C++'s
// std::vector and Rust's Vec. Push appends in amortized O(1): when the
// buffer is full it is reallocated with 50% more capacity. The capacity
// only shrinks when Shrink is called.
type VecOf[T any] struct {
	buf    []T
	length int
	mem    MemLimiter
}

// NewVecOf creates a vector with the default capacity of 100.
//
// Parameters:
//   - WithMemLimiter option to meter buffer allocations
func NewVecOf[T any](options ...func(*Config)) (*VecOf[T], error) {
	return newVecOf[T](initialVecCapacity, applyOptions(options))
}

// NewVecOfCap creates a vector with the given capacity. A capacity below 1
// is rejected with ErrBadCapacity.
func NewVecOfCap[T any](capacity int, options ...func(*Config)) (*VecOf[T], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	return newVecOf[T](capacity, applyOptions(options))
}

func newVecOf[T any](capacity int, c Config) (*VecOf[T], error) {
	if err := reserve(c.mem, uintptr(capacity)*itemSize[T]()); err != nil {
		return nil, err
	}
	return &VecOf[T]{buf: make([]T, capacity), mem: c.mem}, nil
}

func itemSize[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// Push appends item to the vector. It fails only when the buffer is full
// and the reservation for the grown buffer is denied; the vector is
// unchanged in that case.
func (v *VecOf[T]) Push(item T) error {
	if v.length == len(v.buf) {
		if err := v.realloc(int(vecGrowthFactor * float64(len(v.buf)))); err != nil {
			return err
		}
	}
	v.buf[v.length] = item
	v.length++
	return nil
}

// Pop removes and returns the last item. The ok result is false when the
// vector is empty.
func (v *VecOf[T]) Pop() (item T, ok bool) {
	if v.length == 0 {
		return item, false
	}
	var zero T
	v.length--
	item = v.buf[v.length]
	// Drop the slot's reference so the GC is not kept from the old value.
	v.buf[v.length] = zero
	return item, true
}

// Shrink reallocates the buffer to exactly the current length. It can fail
// when a limiter is configured and the replacement buffer cannot be
// reserved before the old one is released; the vector is unchanged then.
// Shrinking an empty vector leaves it with no capacity at all, and a
// vector cannot grow back from zero: the next Push panics, the same hazard
// as the zero-capacity table.
func (v *VecOf[T]) Shrink() error {
	return v.realloc(v.length)
}

func (v *VecOf[T]) realloc(capacity int) error {
	// The replacement is reserved while the old buffer is still held,
	// the same transient double accounting a realloc performs.
	if err := reserve(v.mem, uintptr(capacity)*itemSize[T]()); err != nil {
		return err
	}
	buf := make([]T, capacity)
	copy(buf, v.buf[:v.length])
	release(v.mem, uintptr(len(v.buf))*itemSize[T]())
	v.buf = buf
	return nil
}

// At returns the element at index i. It panics if i is out of range.
func (v *VecOf[T]) At(i int) T {
	return v.buf[:v.length][i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (v *VecOf[T]) Set(i int, item T) {
	v.buf[:v.length][i] = item
}

// Slice returns a live view of the vector's elements. The view stays valid
// until the next Push, Shrink or Free.
func (v *VecOf[T]) Slice() []T {
	return v.buf[:v.length]
}

// Len returns the number of elements in the vector.
func (v *VecOf[T]) Len() int {
	return v.length
}

// Cap returns the current capacity of the vector.
func (v *VecOf[T]) Cap() int {
	return len(v.buf)
}

// Free releases the buffer and returns its reservation to the limiter. The
// vector must not be used afterward; calling Free again is a no-op.
func (v *VecOf[T]) Free() {
	release(v.mem, uintptr(len(v.buf))*itemSize[T]())
	v.buf = nil
	v.length = 0
}
