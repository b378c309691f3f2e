//go:build chained_opt_cachelinesize_128

package chained

// CacheLineSize forced to 128 bytes by the build tag.
const CacheLineSize = 128
