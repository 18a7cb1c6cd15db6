package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const minCounters = 1000

// Cache is a small typed wrapper over ristretto keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// Stats is a snapshot of cache activity.
type Stats struct {
	Name         string  `json:"name"`
	Hits         uint64  `json:"hits"`
	Misses       uint64  `json:"misses"`
	Sets         uint64  `json:"sets"`
	HitRate      float64 `json:"hit_rate"`
	CostAdded    uint64  `json:"cost_added"`
	CostEvicted  uint64  `json:"cost_evicted"`
	MemoryUsedKB float64 `json:"memory_used_kb"`
	CurrentItems int64   `json:"current_items"`
}

// New creates a cache. costFunc sizes an entry when Set is called with cost 0.
func New[T any](name string, maxCost int64, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	counters := maxCost / 100 // ~10x the expected item count for 1KB+ entries
	if counters < minCounters {
		counters = minCounters
	}
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: counters,
		MaxCost:     maxCost,
		BufferItems: 64, // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
		ttl:  ttl,
	}, nil
}

// NewBytes creates a cache for rendered output, costed by length.
func NewBytes(name string, maxCost int64, ttl time.Duration) (*Cache[[]byte], error) {
	return New(name, maxCost, ttl, func(b []byte) int64 {
		return int64(len(b))
	})
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's default TTL
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, c.ttl)
}

func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered sets have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

func (c *Cache[T]) GetItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics

	hitRate := 0.0
	if total := m.Hits() + m.Misses(); total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return Stats{
		Name:         c.name,
		Hits:         m.Hits(),
		Misses:       m.Misses(),
		Sets:         m.KeysAdded(),
		HitRate:      hitRate,
		CostAdded:    m.CostAdded(),
		CostEvicted:  m.CostEvicted(),
		MemoryUsedKB: float64(m.CostAdded()-m.CostEvicted()) / 1024,
		CurrentItems: c.GetItemCount(),
	}
}
