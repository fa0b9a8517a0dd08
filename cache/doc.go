// Package cache provides a sharded, thread-safe memoizing cache.
//
// ShardedCache splits its keys over 16 shards to reduce lock contention.
// It runs in one of two modes:
//
//   - Bounded (capacity > 0): each shard keeps at most capacity entries and
//     evicts the least recently used one when full.
//   - Unbounded (capacity <= 0): entries are never evicted, so GetOrCreate
//     calls create at most once per distinct key for the cache's lifetime.
//
// Typical use memoizes a pure function of a small key:
//
//	c := cache.NewSharded[uint32, uint32](cache.Unbounded, cache.Uint32Hasher)
//	v := c.GetOrCreate(key, func() uint32 { return expensive(key) })
//
// # Thread Safety
//
// ShardedCache is safe for concurrent use and must not be copied after
// creation.
package cache
