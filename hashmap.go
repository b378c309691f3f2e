package chained

import "unsafe"

const (
	initialHashMapCapacity = 100
	hashMapGrowthFactor    = 2.0
)

// HashFn computes the hash of a key. Hashes should be deterministic and as
// uniformly distributed as practical; they do not need to be cryptographic
// (and should not be, a hash table is the wrong place for that cost).
type HashFn[K any] func(K) uintptr

// EqualFn reports whether two keys or items are equal.
type EqualFn[K any] func(K, K) bool

// EntryOf is a key/value pair stored in a bucket chain. The entry owns both
// fields; mutating a live entry's Key breaks the table.
type EntryOf[K, V any] struct {
	Key   K
	Value V
}

// HashMapOf is a hash table with separate chaining: entries whose keys hash
// to the same slot of the bucket array are linked into a ListOf chain. The
// caller supplies the hash and key-equality functions at construction and
// they never change afterward.
//
// The table resizes itself. A Put that makes size exceed the number of
// buckets allocates a bucket array twice as large and moves every entry
// into it by popping the front of each old chain and pushing it onto the
// front of the target chain, so the relative order of colliding entries is
// not preserved across a resize. The capacity never shrinks.
//
// HashMapOf is not safe for concurrent use; callers needing that must wrap
// every operation in their own synchronization, since no operation is
// atomic across a resize. When the table is no longer needed, Free releases
// every chain and the bucket array; the table must not be used after that.
type HashMapOf[K, V any] struct {
	buckets []ListOf[EntryOf[K, V]]
	size    int
	hash    HashFn[K]
	equal   EqualFn[K]
	mem     MemLimiter
}

// NewHashMapOf creates a table with the default capacity of 100 buckets.
//
// Parameters:
//   - hash: bucket selection, fixed for the table's lifetime
//   - equal: key equality, fixed for the table's lifetime
//   - WithMemLimiter option to meter allocations
func NewHashMapOf[K, V any](
	hash HashFn[K],
	equal EqualFn[K],
	options ...func(*Config),
) (*HashMapOf[K, V], error) {
	return NewHashMapOfCap[K, V](hash, equal, initialHashMapCapacity, options...)
}

// NewHashMapOfCap creates a table with the given number of buckets. The
// capacity is not validated here: a zero-bucket table is constructible and
// unusable (the first Put panics on the bucket modulo), which keeps
// capacity handling entirely a question of allocation.
func NewHashMapOfCap[K, V any](
	hash HashFn[K],
	equal EqualFn[K],
	capacity int,
	options ...func(*Config),
) (*HashMapOf[K, V], error) {
	c := applyOptions(options)
	buckets, err := newBuckets[K, V](capacity, c.mem)
	if err != nil {
		return nil, err
	}
	return &HashMapOf[K, V]{
		buckets: buckets,
		hash:    hash,
		equal:   equal,
		mem:     c.mem,
	}, nil
}

func newBuckets[K, V any](capacity int, mem MemLimiter) ([]ListOf[EntryOf[K, V]], error) {
	if err := reserve(mem, uintptr(capacity)*bucketSize[K, V]()); err != nil {
		return nil, err
	}
	buckets := make([]ListOf[EntryOf[K, V]], capacity)
	for i := range buckets {
		buckets[i].mem = mem
	}
	return buckets, nil
}

func bucketSize[K, V any]() uintptr {
	var b ListOf[EntryOf[K, V]]
	return unsafe.Sizeof(b)
}

// Put stores value under key. If an entry with an equal key exists its
// value is overwritten in place and the size is unchanged; otherwise a new
// entry is appended at its bucket's tail. A denied node reservation is
// returned with the table unchanged.
//
// When inserting a new entry pushes size past the bucket count the table
// resizes before returning. A failed resize is returned as the error even
// though the triggering insert stays committed; the table remains fully
// usable at its old capacity.
func (m *HashMapOf[K, V]) Put(key K, value V) error {
	pos := m.hash(key) % uintptr(len(m.buckets))
	bucket := &m.buckets[pos]

	// The likeliest case for a healthy table: the bucket is empty and
	// there is nothing to scan.
	if bucket.length == 0 {
		if err := bucket.PushBack(EntryOf[K, V]{Key: key, Value: value}); err != nil {
			return err
		}
		m.size++
		if m.size == len(m.buckets)+1 {
			return m.resize()
		}
		return nil
	}

	for curr := bucket.head; curr != nil; curr = curr.next {
		if m.equal(curr.Value.Key, key) {
			curr.Value.Value = value
			return nil
		}
	}

	if err := bucket.PushBack(EntryOf[K, V]{Key: key, Value: value}); err != nil {
		return err
	}
	m.size++

	// size moves by at most one per Put and overwrites never touch it, so
	// this equality fires exactly once per threshold crossing. A >= test
	// would re-trigger on every insert after a failed resize.
	if m.size == len(m.buckets)+1 {
		return m.resize()
	}
	return nil
}

// Get returns the value stored under key. The ok result is false when the
// key is absent. Get has no failure mode and no side effects.
func (m *HashMapOf[K, V]) Get(key K) (value V, ok bool) {
	pos := m.hash(key) % uintptr(len(m.buckets))

	curr := m.buckets[pos].head
	for curr != nil && !m.equal(curr.Value.Key, key) {
		curr = curr.next
	}
	if curr != nil {
		return curr.Value.Value, true
	}
	return value, false
}

// Remove deletes the entry stored under key and returns its value. The ok
// result is false when the key is absent; the table is unchanged then.
func (m *HashMapOf[K, V]) Remove(key K) (value V, ok bool) {
	pos := m.hash(key) % uintptr(len(m.buckets))
	bucket := &m.buckets[pos]

	var prev *NodeOf[EntryOf[K, V]]
	curr := bucket.head
	for curr != nil && !m.equal(curr.Value.Key, key) {
		prev = curr
		curr = curr.next
	}
	if curr == nil {
		return value, false
	}

	value = curr.Value.Value
	bucket.Remove(curr, prev)
	m.size--
	return value, true
}

// resize moves the table into a bucket array grown by hashMapGrowthFactor.
// A fresh array rather than growing in place: every entry has to move
// anyway, so reusing the old memory would only get in the way. On a denied
// reservation the table is left exactly as it was.
func (m *HashMapOf[K, V]) resize() error {
	newCapacity := int(hashMapGrowthFactor * float64(len(m.buckets)))
	newBuckets, err := newBuckets[K, V](newCapacity, m.mem)
	if err != nil {
		return err
	}

	for i := range m.buckets {
		old := &m.buckets[i]
		for {
			node := old.popFrontNode()
			if node == nil {
				break
			}
			pos := m.hash(node.Value.Key) % uintptr(newCapacity)
			// The node is relinked rather than released and re-reserved,
			// so a limiter shared with other goroutines cannot fail the
			// move halfway and drop entries.
			newBuckets[pos].pushFrontNode(node)
		}
		old.Free()
	}

	release(m.mem, uintptr(len(m.buckets))*bucketSize[K, V]())
	m.buckets = newBuckets
	return nil
}

// Size returns the number of entries in the table.
func (m *HashMapOf[K, V]) Size() int {
	return m.size
}

// Capacity returns the current number of buckets.
func (m *HashMapOf[K, V]) Capacity() int {
	return len(m.buckets)
}

// Free releases every bucket chain and the bucket array, returning their
// reservations to the limiter. The table must not be used afterward;
// calling Free again is a no-op.
func (m *HashMapOf[K, V]) Free() {
	for i := range m.buckets {
		m.buckets[i].Free()
	}
	release(m.mem, uintptr(len(m.buckets))*bucketSize[K, V]())
	m.buckets = nil
	m.size = 0
}
