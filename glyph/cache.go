// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"golang.org/x/image/font"

	"github.com/gogpu/pixcore"
	"github.com/gogpu/pixcore/cache"
	"github.com/gogpu/pixcore/color"
)

// Key identifies a rasterized glyph. PPEM is in 26.6 fixed point so that
// sizes differing below 1/64 pixel share an entry.
type Key struct {
	Font uint64
	ID   ID
	PPEM int32
}

func hashKey(k Key) uint64 {
	return cache.Uint64Hasher(k.Font*0x9E3779B97F4A7C15 ^ uint64(k.ID)<<32 ^ uint64(uint32(k.PPEM)))
}

// DefaultCacheBytes is the default byte budget of a Cache.
const DefaultCacheBytes = 4 << 20

type cacheConfig struct {
	entries int
	bytes   int64
	gamma   color.GammaFunc
	hinting font.Hinting
}

// CacheOption configures a Cache.
type CacheOption func(*cacheConfig)

// WithCapacity limits the number of cached glyphs. The limit is split
// across the cache shards.
func WithCapacity(n int) CacheOption {
	return func(c *cacheConfig) {
		if n > 0 {
			c.entries = max(n/cache.ShardCount, 1)
		}
	}
}

// WithMaxBytes sets the byte budget of serialized coverage. Zero
// disables the byte limit.
func WithMaxBytes(n int64) CacheOption {
	return func(c *cacheConfig) {
		if n >= 0 {
			c.bytes = n
		}
	}
}

// WithGamma reshapes glyph coverage through f at rasterization time.
func WithGamma(f color.GammaFunc) CacheOption {
	return func(c *cacheConfig) {
		c.gamma = f
	}
}

// WithHinting rounds glyph advances with h. Outlines are never hinted.
func WithHinting(h font.Hinting) CacheOption {
	return func(c *cacheConfig) {
		c.hinting = h
	}
}

// Cache holds rasterized glyphs keyed by font, glyph and size. It is safe
// for concurrent use.
type Cache struct {
	c       *cache.ShardedCache[Key, *Coverage]
	gamma   color.GammaFunc
	hinting font.Hinting
}

// NewCache returns an empty glyph cache.
func NewCache(opts ...CacheOption) *Cache {
	cfg := cacheConfig{entries: cache.DefaultShardEntries, bytes: DefaultCacheBytes}
	for _, o := range opts {
		o(&cfg)
	}
	c := &Cache{
		c: cache.NewSharded[Key, *Coverage](hashKey,
			cache.WithShardEntries(cfg.entries), cache.WithMaxBytes(cfg.bytes)),
		gamma:   cfg.gamma,
		hinting: cfg.hinting,
	}
	c.c.OnEvict(func(k Key, v *Coverage) {
		pixcore.Logger().Debug("glyph: cache evict", "font", k.Font, "glyph", k.ID, "ppem", k.PPEM, "bytes", v.Size())
	})
	return c
}

// Glyph returns the rasterized glyph, rendering and storing it on a miss.
// Errors are not cached.
func (c *Cache) Glyph(f *Font, id ID, ppem float64) (*Coverage, error) {
	k := Key{Font: f.ID(), ID: id, PPEM: int32(toFixed(ppem))}
	if g, ok := c.c.Get(k); ok {
		return g, nil
	}
	pixcore.Logger().Debug("glyph: cache miss", "font", k.Font, "glyph", id, "ppem", ppem)
	g, err := Rasterize(f, id, ppem, c.gamma)
	if err != nil {
		return nil, err
	}
	if c.hinting != font.HintingNone {
		g.Advance = f.Advance(id, ppem, c.hinting)
	}
	c.c.Set(k, g, g.Size()+coverageOverhead)
	return g, nil
}

// coverageOverhead is the accounted cost of a Coverage besides its data.
const coverageOverhead = 64

// Len returns the number of cached glyphs.
func (c *Cache) Len() int { return c.c.Len() }

// Bytes returns the accounted size of the cached glyphs.
func (c *Cache) Bytes() int64 { return c.c.Bytes() }

// Stats returns hit, miss and eviction counters.
func (c *Cache) Stats() cache.Stats { return c.c.Stats() }

// Clear drops every glyph.
func (c *Cache) Clear() { c.c.Clear() }
