package cache

import (
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2 for fast
	// modulo via bitwise AND.
	ShardCount = 16

	// Unbounded disables eviction when passed as the capacity to NewSharded.
	Unbounded = 0

	shardMask = ShardCount - 1
)

// Hasher computes the hash used to pick a key's shard. Only the low bits
// select the shard, so the hash must mix all of the key into them.
type Hasher[K any] func(K) uint64

// Mix64 is the splitmix64 finalizer: a cheap bijective mixer that spreads
// every input bit over the whole output.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Uint32Hasher hashes packed 32-bit keys such as 0xAARRGGBB colors.
func Uint32Hasher(u uint32) uint64 {
	return Mix64(uint64(u))
}

// ShardedCache is a thread-safe, sharded cache with optional per-shard LRU
// eviction. See the package documentation for the two modes.
type ShardedCache[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int // per shard; <= 0 is unbounded

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	lru     *lruList[K] // nil when unbounded
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a cache holding at most capacity entries per shard.
// A capacity <= 0 (Unbounded) never evicts.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *ShardedCache[K, V] {
	c := &ShardedCache[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i] = c.newShard()
	}
	return c
}

func (c *ShardedCache[K, V]) newShard() *shard[K, V] {
	s := &shard[K, V]{entries: make(map[K]*entry[K, V])}
	if c.bounded() {
		s.lru = newLRUList[K]()
	}
	return s
}

func (c *ShardedCache[K, V]) bounded() bool {
	return c.capacity > 0
}

func (c *ShardedCache[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)

	if !c.bounded() {
		// No recency to track: a read lock is enough.
		s.mu.RLock()
		e, ok := s.entries[key]
		s.mu.RUnlock()
		if !ok {
			c.misses.Add(1)
			var zero V
			return zero, false
		}
		c.hits.Add(1)
		return e.value, true
	}

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	value := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value, replacing any previous value for key.
func (c *ShardedCache[K, V]) Set(key K, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		if s.lru != nil {
			s.lru.MoveToFront(e.node)
		}
		return
	}
	c.insert(s, key, value)
}

// GetOrCreate returns the cached value for key, calling create to compute
// it on a miss.
//
// create runs with the shard's write lock held, so concurrent callers for
// the same key wait for the first one instead of computing again. In
// unbounded mode this means create runs at most once per key. Keep create
// fast and never call back into the cache from it.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)

	if !c.bounded() {
		s.mu.RLock()
		e, ok := s.entries[key]
		s.mu.RUnlock()
		if ok {
			c.hits.Add(1)
			return e.value
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: another goroutine may have created it meanwhile.
	if e, ok := s.entries[key]; ok {
		if s.lru != nil {
			s.lru.MoveToFront(e.node)
		}
		c.hits.Add(1)
		return e.value
	}

	c.misses.Add(1)
	value := create()
	c.insert(s, key, value)
	return value
}

// insert adds a new entry, evicting the oldest ones first when the shard
// is full. Caller must hold s.mu for writing.
func (c *ShardedCache[K, V]) insert(s *shard[K, V], key K, value V) {
	e := &entry[K, V]{value: value}
	if s.lru != nil {
		for s.lru.Len() >= c.capacity {
			oldest, ok := s.lru.RemoveOldest()
			if !ok {
				break
			}
			delete(s.entries, oldest)
			c.evictions.Add(1)
		}
		e.node = s.lru.PushFront(key)
	}
	s.entries[key] = e
}

// Delete removes an entry. Returns true if it was present.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if s.lru != nil {
		s.lru.Remove(e.node)
	}
	delete(s.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept; see ResetStats.
func (c *ShardedCache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		if s.lru != nil {
			s.lru.Clear()
		}
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity, or 0 when unbounded.
func (c *ShardedCache[K, V]) Capacity() int {
	if !c.bounded() {
		return Unbounded
	}
	return c.capacity
}

// ShardLen returns the number of entries in each shard.
// Useful for checking how well the hasher spreads keys.
func (c *ShardedCache[K, V]) ShardLen() [ShardCount]int {
	var lens [ShardCount]int
	for i, s := range c.shards {
		s.mu.RLock()
		lens[i] = len(s.entries)
		s.mu.RUnlock()
	}
	return lens
}

// Stats returns current cache statistics.
func (c *ShardedCache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	st := Stats{
		Len:       c.Len(),
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
	if c.bounded() {
		st.Capacity = c.capacity
		st.TotalCapacity = c.capacity * ShardCount
	}
	return st
}

// ResetStats resets all statistics counters to zero.
func (c *ShardedCache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
