// Package cache provides a small generic LRU cache.
//
//	c := cache.New[int, []float32](32)
//	kernel, _ := c.GetOrCreate(225, func() ([]float32, error) {
//	    return build(2.25), nil
//	})
//
// An eviction callback lets owners release resources held by values, such
// as font faces:
//
//	faces := cache.New[fixed.Int26_6, font.Face](16,
//	    cache.WithEvict(func(_ fixed.Int26_6, f font.Face) { f.Close() }))
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
