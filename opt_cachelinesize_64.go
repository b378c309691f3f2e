//go:build chained_opt_cachelinesize_64

package chained

// CacheLineSize forced to 64 bytes by the build tag.
const CacheLineSize = 64
