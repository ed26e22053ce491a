// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. It is a power of two so the
	// shard index is a mask of the hash.
	ShardCount = 16
	shardMask  = ShardCount - 1

	// DefaultShardEntries is the default entry limit of one shard.
	DefaultShardEntries = 256
)

// Hasher computes the hash used to pick a shard.
type Hasher[K any] func(K) uint64

// StringHasher is FNV-1a over the bytes of s.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Uint64Hasher is FNV-1a over the little-endian bytes of u.
func Uint64Hasher(u uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	h := fnv.New64a()
	_, _ = h.Write(b[:])
	return h.Sum64()
}

type config struct {
	entries  int
	maxBytes int64
}

// Option configures a ShardedCache.
type Option func(*config)

// WithShardEntries limits the number of entries per shard.
func WithShardEntries(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.entries = n
		}
	}
}

// WithMaxBytes sets the total byte budget, split evenly across shards.
// Zero means no byte limit.
func WithMaxBytes(n int64) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxBytes = n
		}
	}
}

// ShardedCache is a concurrent LRU cache with per-entry byte costs.
type ShardedCache[K comparable, V any] struct {
	shards     [ShardCount]shard[K, V]
	hasher     Hasher[K]
	entries    int
	shardBytes int64
	onEvict    func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	lru     lruList[K]
	bytes   int64
}

type entry[K comparable, V any] struct {
	value V
	cost  int64
	node  *lruNode[K]
}

// NewSharded returns an empty cache.
func NewSharded[K comparable, V any](hasher Hasher[K], opts ...Option) *ShardedCache[K, V] {
	cfg := config{entries: DefaultShardEntries}
	for _, o := range opts {
		o(&cfg)
	}
	c := &ShardedCache[K, V]{
		hasher:     hasher,
		entries:    cfg.entries,
		shardBytes: cfg.maxBytes / ShardCount,
	}
	if cfg.maxBytes > 0 && c.shardBytes == 0 {
		c.shardBytes = 1
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*entry[K, V])
	}
	return c
}

// OnEvict registers fn to be called, with the shard lock held, for every
// entry dropped to make room. Call it before the cache is shared.
func (c *ShardedCache[K, V]) OnEvict(fn func(K, V)) { c.onEvict = fn }

func (c *ShardedCache[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[c.hasher(key)&shardMask]
}

// Get returns the value for key and marks it recently used.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	v := e.value
	s.mu.Unlock()
	c.hits.Add(1)
	return v, true
}

// Set stores value with the given byte cost, replacing any previous
// value, then evicts until the shard is within its limits. An entry whose
// cost alone exceeds the shard budget is not stored.
func (c *ShardedCache[K, V]) Set(key K, value V, cost int) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.set(s, key, value, int64(cost))
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs with the shard locked, so concurrent callers for
// one key create it once.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() (V, int)) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	v, cost := create()
	c.set(s, key, v, int64(cost))
	return v
}

func (c *ShardedCache[K, V]) set(s *shard[K, V], key K, value V, cost int64) {
	if old, ok := s.entries[key]; ok {
		s.lru.Remove(old.node)
		s.bytes -= old.cost
		delete(s.entries, key)
	}
	if c.shardBytes > 0 && cost > c.shardBytes {
		return
	}
	for s.lru.Len() >= c.entries || (c.shardBytes > 0 && s.bytes+cost > c.shardBytes) {
		if !c.evictOldest(s) {
			break
		}
	}
	s.entries[key] = &entry[K, V]{value: value, cost: cost, node: s.lru.PushFront(key)}
	s.bytes += cost
}

func (c *ShardedCache[K, V]) evictOldest(s *shard[K, V]) bool {
	key, ok := s.lru.Oldest()
	if !ok {
		return false
	}
	e := s.entries[key]
	s.lru.Remove(e.node)
	s.bytes -= e.cost
	delete(s.entries, key)
	c.evictions.Add(1)
	if c.onEvict != nil {
		c.onEvict(key, e.value)
	}
	return true
}

// Delete removes key and reports whether it was present.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	s.bytes -= e.cost
	delete(s.entries, key)
	return true
}

// Clear removes every entry without calling the eviction hook.
func (c *ShardedCache[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		clear(s.entries)
		s.lru.Clear()
		s.bytes = 0
		s.mu.Unlock()
	}
}

// Len returns the number of entries.
func (c *ShardedCache[K, V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Bytes returns the summed cost of all entries.
func (c *ShardedCache[K, V]) Bytes() int64 {
	var n int64
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += s.bytes
		s.mu.Unlock()
	}
	return n
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Bytes     int64
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
}

// Stats returns current counters.
func (c *ShardedCache[K, V]) Stats() Stats {
	st := Stats{
		Len:       c.Len(),
		Bytes:     c.Bytes(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
	if total := st.Hits + st.Misses; total > 0 {
		st.HitRate = float64(st.Hits) / float64(total)
	}
	return st
}

// ResetStats zeroes the hit, miss and eviction counters.
func (c *ShardedCache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
