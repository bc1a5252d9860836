// Package cache provides a generic thread-safe LRU cache.
//
// pixfilter uses it to share precomputed convolution kernels between
// filter calls:
//
//	c := cache.New[uint64, []float32](64)
//	k := c.GetOrCreate(key, func() []float32 { return build() })
//
// Values are shared between callers and must be treated as read-only.
package cache
