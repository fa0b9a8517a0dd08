package cache

import "log/slog"

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the per-shard capacity, 0 when unbounded.
	Capacity int
	// TotalCapacity is Capacity times ShardCount, 0 when unbounded.
	TotalCapacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before any lookup.
	HitRate float64
	// Evictions is the number of entries dropped to stay within capacity.
	Evictions uint64
}

// LogValue implements slog.LogValuer so Stats can be logged as a group.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", s.Len),
		slog.Int("capacity", s.TotalCapacity),
		slog.Uint64("hits", s.Hits),
		slog.Uint64("misses", s.Misses),
		slog.Float64("hit_rate", s.HitRate),
		slog.Uint64("evictions", s.Evictions),
	)
}
