package catalog

import (
	"sync"
	"time"
)

// memoCache is a bounded in-memory cache keyed by movie id. Entries expire
// after the configured TTL; when the cache is full the stalest entry is
// evicted to make room. Safe for concurrent use.
type memoCache[V any] struct {
	mu         sync.Mutex
	entries    map[int64]memoEntry[V]
	ttl        time.Duration
	maxEntries int

	now func() time.Time
}

type memoEntry[V any] struct {
	value    V
	storedAt time.Time
}

func newMemoCache[V any](ttl time.Duration, maxEntries int) *memoCache[V] {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &memoCache[V]{
		entries:    make(map[int64]memoEntry[V]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *memoCache[V]) get(key int64) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return entry.value, true
}

func (c *memoCache[V]) set(key int64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = memoEntry[V]{value: value, storedAt: c.now()}
}

// evictOldestLocked removes the entry with the oldest store time. Linear scan
// is fine at the cache sizes we run with.
func (c *memoCache[V]) evictOldestLocked() {
	var (
		oldestKey int64
		oldestAt  time.Time
		found     bool
	)
	for key, entry := range c.entries {
		if !found || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
			found = true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}

func (c *memoCache[V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
