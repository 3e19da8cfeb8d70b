package mapsym

import (
	"reflect"

	"github.com/gogpu/mapsym/internal/cache"
)

// DefaultCacheSize is the number of arrows a Cache keeps when created
// with a non-positive limit.
const DefaultCacheSize = 256

// Cache shares rendered arrows between callers asking for the same
// appearance, so a layer styling thousands of line segments renders each
// distinct arrow once. Cache is safe for concurrent use.
type Cache struct {
	base  []Option
	cache *cache.Cache[cacheKey, *Arrow]
}

type cacheKey struct {
	checksum    string
	atlas       Atlas
	rotation    float64
	snapToPixel bool
}

// NewCache creates a cache holding up to limit arrows. opts apply to every
// arrow the cache creates, before the options passed to Arrow.
func NewCache(limit int, opts ...Option) *Cache {
	if limit <= 0 {
		limit = DefaultCacheSize
	}
	return &Cache{
		base:  opts,
		cache: cache.New[cacheKey, *Arrow](limit),
	}
}

// Arrow returns the cached arrow for the given appearance, creating it
// with NewArrow on first use. Errors from NewArrow are not cached.
//
// Arrows packed into an atlas whose dynamic type is not comparable cannot
// be keyed and are rendered anew on every call.
func (c *Cache) Arrow(shape Shape, scale float64, opts ...Option) (*Arrow, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	all := c.options(opts)
	key, ok := c.key(shape, scale, all)
	if !ok {
		Logger().Debug("mapsym: arrow not cacheable, atlas is not comparable")
		return NewArrow(shape, scale, all...)
	}
	return c.cache.GetOrCreate(key, func() (*Arrow, error) {
		return NewArrow(shape, scale, all...)
	})
}

// Lookup returns the cached arrow for the given appearance without
// rendering a missing one.
func (c *Cache) Lookup(shape Shape, scale float64, opts ...Option) (*Arrow, bool) {
	if shape.Validate() != nil {
		return nil, false
	}
	key, ok := c.key(shape, scale, c.options(opts))
	if !ok {
		return nil, false
	}
	return c.cache.Get(key)
}

// Forget drops the cached arrow for the given appearance. It reports
// whether one was cached. Atlas slots the arrow used are not released.
func (c *Cache) Forget(shape Shape, scale float64, opts ...Option) bool {
	if shape.Validate() != nil {
		return false
	}
	key, ok := c.key(shape, scale, c.options(opts))
	if !ok {
		return false
	}
	return c.cache.Delete(key)
}

func (c *Cache) options(opts []Option) []Option {
	all := make([]Option, 0, len(c.base)+len(opts))
	all = append(all, c.base...)
	return append(all, opts...)
}

// key derives the cache key from the resolved options. It returns false
// when the atlas cannot be used as a map key.
func (c *Cache) key(shape Shape, scale float64, all []Option) (cacheKey, bool) {
	o := defaultArrowOptions()
	for _, opt := range all {
		opt(&o)
	}
	if o.atlas != nil && !reflect.ValueOf(o.atlas).Comparable() {
		return cacheKey{}, false
	}
	ro := NewRenderOptions(shape, scale, o.stroke, o.dashSupported)
	return cacheKey{
		checksum:    checksum(shape, scale, o.fill, o.stroke != nil, ro),
		atlas:       o.atlas,
		rotation:    o.rotation,
		snapToPixel: o.snapToPixel,
	}, true
}

// Len returns the number of cached arrows.
func (c *Cache) Len() int {
	return c.cache.Len()
}

// Stats returns the cache hit and miss counts.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.cache.Stats()
}

// Clear drops every cached arrow.
func (c *Cache) Clear() {
	c.cache.Clear()
}
