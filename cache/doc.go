// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a sharded LRU cache whose entries carry a byte
// cost. Each of the 16 shards evicts its least recently used entries when
// either its entry limit or its share of the byte budget is exceeded.
//
//	c := cache.NewSharded[string, []byte](cache.StringHasher, cache.WithMaxBytes(1<<20))
//	c.Set("key", data, len(data))
//	data, ok := c.Get("key")
//
// ShardedCache is safe for concurrent use and must not be copied.
package cache
