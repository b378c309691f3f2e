package chained

import "golang.org/x/exp/constraints"

// fnv-1a, 64 bit
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// IntHasher returns a HashFn that uses an integer key's own value as its
// hash. Integer keys are usually distributed well enough that no mixing is
// worth the cost.
func IntHasher[K constraints.Integer]() HashFn[K] {
	return func(key K) uintptr {
		return uintptr(key)
	}
}

// StringHasher returns a 64-bit FNV-1a HashFn for string keys.
func StringHasher() HashFn[string] {
	return func(key string) uintptr {
		h := fnvOffset64
		for i := 0; i < len(key); i++ {
			h ^= uint64(key[i])
			h *= fnvPrime64
		}
		return uintptr(h)
	}
}

// EqualOf returns an EqualFn backed by ==.
func EqualOf[K comparable]() EqualFn[K] {
	return func(a, b K) bool {
		return a == b
	}
}
