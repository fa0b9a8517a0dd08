package cache

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func identity(u uint32) uint64 { return uint64(u) }

func TestNewSharded(t *testing.T) {
	c := NewSharded[uint32, int](8, Uint32Hasher)
	if c.Capacity() != 8 {
		t.Errorf("expected capacity 8, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}

	u := NewSharded[uint32, int](Unbounded, Uint32Hasher)
	if u.Capacity() != Unbounded {
		t.Errorf("expected unbounded capacity, got %d", u.Capacity())
	}
	if n := NewSharded[uint32, int](-5, Uint32Hasher).Capacity(); n != Unbounded {
		t.Errorf("negative capacity should be unbounded, got %d", n)
	}
}

func TestShardedCacheGetSet(t *testing.T) {
	for _, capacity := range []int{Unbounded, 4} {
		c := NewSharded[uint32, string](capacity, Uint32Hasher)

		c.Set(0xFF0000, "red")
		val, ok := c.Get(0xFF0000)
		if !ok || val != "red" {
			t.Errorf("capacity %d: Get = (%q, %v), want (red, true)", capacity, val, ok)
		}

		c.Set(0xFF0000, "crimson")
		if val, _ := c.Get(0xFF0000); val != "crimson" {
			t.Errorf("capacity %d: Set should replace, got %q", capacity, val)
		}
		if c.Len() != 1 {
			t.Errorf("capacity %d: expected 1 entry, got %d", capacity, c.Len())
		}

		if _, ok := c.Get(0x00FF00); ok {
			t.Errorf("capacity %d: expected miss for absent key", capacity)
		}
	}
}

func TestShardedCacheGetOrCreate(t *testing.T) {
	c := NewSharded[uint32, int](Unbounded, Uint32Hasher)
	calls := 0

	val := c.GetOrCreate(7, func() int { calls++; return 100 })
	if val != 100 || calls != 1 {
		t.Fatalf("first GetOrCreate = %d with %d calls", val, calls)
	}
	val = c.GetOrCreate(7, func() int { calls++; return 200 })
	if val != 100 || calls != 1 {
		t.Errorf("second GetOrCreate = %d with %d calls, want cached 100 and 1 call", val, calls)
	}
}

// TestGetOrCreateOncePerKey hammers an unbounded cache from many goroutines
// and checks that every key was computed exactly once.
func TestGetOrCreateOncePerKey(t *testing.T) {
	const keys = 512
	c := NewSharded[uint32, uint32](Unbounded, Uint32Hasher)

	var counts [keys]atomic.Int32
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < keys*4; i++ {
				k := uint32((i*7 + g) % keys)
				v := c.GetOrCreate(k, func() uint32 {
					counts[k].Add(1)
					return k * 3
				})
				if v != k*3 {
					t.Errorf("key %d: got %d", k, v)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	for k := range counts {
		if n := counts[k].Load(); n != 1 {
			t.Errorf("key %d computed %d times, want 1", k, n)
		}
	}
	st := c.Stats()
	if st.Misses != keys {
		t.Errorf("expected %d misses, got %d", keys, st.Misses)
	}
	if st.Hits+st.Misses != 16*keys*4 {
		t.Errorf("expected %d lookups, got %d", 16*keys*4, st.Hits+st.Misses)
	}
}

func TestShardedCacheEviction(t *testing.T) {
	// Identity hash with keys that are multiples of ShardCount puts
	// everything in shard 0.
	c := NewSharded[uint32, int](2, identity)
	k := func(i int) uint32 { return uint32(i * ShardCount) }

	c.Set(k(1), 1)
	c.Set(k(2), 2)
	c.Get(k(1)) // k(2) is now the least recently used
	c.Set(k(3), 3)

	if _, ok := c.Get(k(2)); ok {
		t.Error("expected least recently used key to be evicted")
	}
	for _, i := range []int{1, 3} {
		if _, ok := c.Get(k(i)); !ok {
			t.Errorf("expected key %d to survive eviction", i)
		}
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("expected 1 eviction, got %d", ev)
	}
}

func TestUnboundedNeverEvicts(t *testing.T) {
	c := NewSharded[uint32, int](Unbounded, identity)
	for i := 0; i < 10000; i++ {
		c.Set(uint32(i*ShardCount), i)
	}
	if c.Len() != 10000 {
		t.Errorf("expected 10000 entries, got %d", c.Len())
	}
	if ev := c.Stats().Evictions; ev != 0 {
		t.Errorf("expected no evictions, got %d", ev)
	}
}

func TestShardedCacheDeleteClear(t *testing.T) {
	for _, capacity := range []int{Unbounded, 4} {
		c := NewSharded[uint32, int](capacity, Uint32Hasher)
		c.Set(1, 1)
		c.Set(2, 2)

		if !c.Delete(1) {
			t.Errorf("capacity %d: Delete of present key returned false", capacity)
		}
		if c.Delete(1) {
			t.Errorf("capacity %d: Delete of absent key returned true", capacity)
		}
		if _, ok := c.Get(1); ok {
			t.Errorf("capacity %d: deleted key still present", capacity)
		}

		c.Clear()
		if c.Len() != 0 {
			t.Errorf("capacity %d: expected empty cache after Clear, got %d", capacity, c.Len())
		}
		c.Set(3, 3)
		if v, ok := c.Get(3); !ok || v != 3 {
			t.Errorf("capacity %d: cache unusable after Clear", capacity)
		}
	}
}

func TestShardedCacheStats(t *testing.T) {
	c := NewSharded[uint32, int](4, Uint32Hasher)
	c.Set(1, 1)
	c.Get(1)
	c.Get(1)
	c.Get(2)

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Errorf("expected 2 hits and 1 miss, got %d and %d", st.Hits, st.Misses)
	}
	if st.HitRate < 0.66 || st.HitRate > 0.67 {
		t.Errorf("expected hit rate 2/3, got %f", st.HitRate)
	}
	if st.Capacity != 4 || st.TotalCapacity != 4*ShardCount {
		t.Errorf("unexpected capacity in stats: %+v", st)
	}

	c.ResetStats()
	if st := c.Stats(); st.Hits != 0 || st.Misses != 0 || st.HitRate != 0 {
		t.Errorf("expected zeroed stats after reset, got %+v", st)
	}
	if c.Len() != 1 {
		t.Error("ResetStats should not drop entries")
	}
}

func TestStatsLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("cache", "stats", Stats{Len: 3, Hits: 5, Misses: 2})

	out := buf.String()
	for _, want := range []string{"stats.len=3", "stats.hits=5", "stats.misses=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestUint32HasherSpreadsColors(t *testing.T) {
	// Packed grays differ only in a pattern the identity hash would send to
	// a single shard. The mixed hash must use every shard.
	c := NewSharded[uint32, struct{}](Unbounded, Uint32Hasher)
	for v := uint32(0); v < 256; v++ {
		c.Set(v<<16|v<<8|v, struct{}{})
	}
	for i, n := range c.ShardLen() {
		if n == 0 {
			t.Errorf("shard %d is empty", i)
		}
	}
	if Mix64(1) == Mix64(2) {
		t.Error("Mix64 collision")
	}
}

func TestLRUList(t *testing.T) {
	l := newLRUList[string]()
	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d", l.Len())
	}

	a := l.PushFront("a")
	b := l.PushFront("b")
	l.PushFront("c")
	if l.Len() != 3 {
		t.Errorf("expected 3 elements, got %d", l.Len())
	}
	if oldest, ok := l.Oldest(); !ok || oldest != "a" {
		t.Errorf("expected oldest 'a', got %q", oldest)
	}

	l.MoveToFront(a)
	if oldest, _ := l.Oldest(); oldest != "b" {
		t.Errorf("expected oldest 'b' after moving 'a', got %q", oldest)
	}

	l.Remove(b)
	l.Remove(b) // second removal is a no-op
	if l.Len() != 2 {
		t.Errorf("expected 2 elements after remove, got %d", l.Len())
	}

	if removed, ok := l.RemoveOldest(); !ok || removed != "c" {
		t.Errorf("expected to remove 'c', got %q", removed)
	}
	if l.Len() != 1 {
		t.Errorf("expected 1 element, got %d", l.Len())
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("expected empty list after clear, got %d", l.Len())
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("expected RemoveOldest to fail on empty list")
	}
	if _, ok := l.Oldest(); ok {
		t.Error("expected Oldest to fail on empty list")
	}
	l.Remove(nil)
	l.MoveToFront(nil)
}

func BenchmarkGetOrCreateHit(b *testing.B) {
	c := NewSharded[uint32, uint32](Unbounded, Uint32Hasher)
	for i := uint32(0); i < 4096; i++ {
		c.Set(i, i)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var i uint32
		for pb.Next() {
			c.GetOrCreate(i&4095, func() uint32 { return 0 })
			i++
		}
	})
}
