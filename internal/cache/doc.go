// Package cache provides the LRU cache behind mapsym.Cache.
//
//	c := cache.New[string, *mapsym.Arrow](128)
//	a, err := c.GetOrCreate(key, func() (*mapsym.Arrow, error) {
//	    return mapsym.NewArrow(shape, scale)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
