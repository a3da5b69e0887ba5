package client

import (
	"sync"
	"time"
)

// HandleCache caches path-to-handle resolutions so repeated path walks
// skip the per-component Lookup RPCs.
type HandleCache struct {
	mu sync.Mutex

	// Maximum cache size
	maxSize int

	// Time-to-live for cache entries
	ttl time.Duration

	entries map[string]handleCacheEntry
}

// handleCacheEntry is a cached handle with its expiration time
type handleCacheEntry struct {
	handle     []byte
	expiration time.Time
}

// NewHandleCache creates a new handle cache
func NewHandleCache(maxSize int, ttl time.Duration) *HandleCache {
	return &HandleCache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]handleCacheEntry),
	}
}

// Store caches the handle for a path
func (c *HandleCache) Store(path string, handle []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		// Evict expired entries first; if nothing expired, drop the
		// cache rather than grow without bound
		now := time.Now()
		for key, entry := range c.entries {
			if now.After(entry.expiration) {
				delete(c.entries, key)
			}
		}
		if len(c.entries) >= c.maxSize {
			c.entries = make(map[string]handleCacheEntry)
		}
	}

	c.entries[path] = handleCacheEntry{
		handle:     append([]byte(nil), handle...),
		expiration: time.Now().Add(c.ttl),
	}
}

// Get returns the cached handle for a path, if still fresh
func (c *HandleCache) Get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok || time.Now().After(entry.expiration) {
		return nil, false
	}
	return append([]byte(nil), entry.handle...), true
}

// Invalidate removes a path from the cache
func (c *HandleCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Clear empties the cache
func (c *HandleCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]handleCacheEntry)
}
