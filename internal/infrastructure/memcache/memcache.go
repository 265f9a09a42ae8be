// Package memcache provides a process-local implementation of ports.Cache
// with time-based expiry. Entries are evicted lazily when a read finds them
// expired; the cache is cold on every process start.
package memcache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value    []byte
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.storedAt) >= e.ttl
}

// Memcache is a mutex-guarded in-memory key-value store.
type Memcache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty cache.
func New() *Memcache {
	return &Memcache{entries: make(map[string]entry), now: time.Now}
}

// Get implements Cache.Get. Expired entries are treated as absent and
// removed.
func (c *Memcache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if cur, ok := c.entries[key]; ok && cur.expired(c.now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set implements Cache.Set. Last writer wins.
func (c *Memcache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.now(), ttl: ttl}
	c.mu.Unlock()
	return nil
}

// Delete implements Cache.Delete.
func (c *Memcache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}
