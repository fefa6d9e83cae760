// Package cache provides an in-memory TTL cache for derived results such as
// analytics bundles. Entries expire lazily on read; a zero TTL stores an entry
// that is already expired and therefore never readable.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Named TTLs for common result classes.
const (
	// ShortTTL suits volatile results like mood detection.
	ShortTTL = 5 * time.Minute
	// MediumTTL suits aggregated analytics bundles.
	MediumTTL = 30 * time.Minute
	// LongTTL suits slow-moving reference data.
	LongTTL = 24 * time.Hour
)

type item struct {
	value     any
	expiresAt time.Time
}

func (i item) expired(now time.Time) bool {
	return !i.expiresAt.After(now)
}

// Cache is a concurrency-safe string-keyed store with per-entry TTLs. Each
// instance carries a default TTL so callers can hold differently named caches
// for different staleness tolerances.
type Cache struct {
	mu         sync.RWMutex
	items      map[string]item
	defaultTTL time.Duration
	now        func() time.Time
}

// New creates an empty cache whose Set uses defaultTTL.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{items: make(map[string]item), defaultTTL: defaultTTL, now: time.Now}
}

// Get returns the value stored under key. The second return reports whether a
// live entry was found; expired entries are removed and reported as absent.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	now := c.now()
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if it.expired(now) {
		c.mu.Lock()
		// Re-check under the write lock in case of a concurrent Set.
		if current, still := c.items[key]; still && current.expired(c.now()) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return it.value, true
}

// Set stores value under key with the cache's default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL. A zero or negative TTL
// stores an entry that is immediately expired.
func (c *Cache) SetTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.items[key] = item{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Remove deletes the entry under key. Removing an absent key is a no-op.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]item)
	c.mu.Unlock()
}

// ClearByPrefix removes every entry whose key starts with prefix and returns
// the number of entries removed. Clearing an unknown prefix is a no-op.
func (c *Cache) ClearByPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, including ones that have expired
// but have not been read since.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
