package cache

import (
	"sync"
	"time"
)

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a simple typed in-memory cache with per-entry TTL
type Cache[V any] struct {
	items map[string]item[V]
	mutex sync.RWMutex
}

// New creates a new cache instance
func New[V any]() *Cache[V] {
	return &Cache[V]{
		items: make(map[string]item[V]),
	}
}

// Get retrieves a live item. Expired entries are removed on read; there is
// no background janitor.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mutex.RLock()
	entry, exists := c.items[key]
	c.mutex.RUnlock()

	var zero V
	if !exists {
		return zero, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mutex.Lock()
		// Re-check under the write lock; Set may have raced in a fresh value.
		if current, ok := c.items[key]; ok && time.Now().After(current.expiresAt) {
			delete(c.items, key)
		}
		c.mutex.Unlock()
		return zero, false
	}

	return entry.value, true
}

// Set stores an item in the cache with TTL
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = item[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes an item from the cache
func (c *Cache[V]) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[string]item[V])
}

// Len counts entries still held, expired ones included until their next read.
func (c *Cache[V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}
