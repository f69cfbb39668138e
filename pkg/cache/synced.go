package cache

import "sync"

// Synced wraps an LRU with a mutex so it can be shared across goroutines.
// The core stays lock-free for single-owner callers; Synced is the opt-in
// mutual-exclusion layer for everyone else.
type Synced[K comparable, V any] struct {
	mu  sync.Mutex
	lru *LRU[K, V]
}

// NewSynced creates a mutex-protected LRU with the given capacity. Options
// are forwarded to the underlying cache; the eviction callback runs with the
// lock held and must not call back into the cache.
func NewSynced[K comparable, V any](capacity int, opts ...Option[K, V]) (*Synced[K, V], error) {
	lru, err := New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Synced[K, V]{lru: lru}, nil
}

// Get retrieves the value for key and promotes it to most recently used.
func (c *Synced[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(key)
}

// Peek retrieves the value for key without updating its recency.
func (c *Synced[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Peek(key)
}

// Contains reports whether key is present without updating its recency.
func (c *Synced[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(key)
}

// Put inserts or updates the value for key, evicting the least recently
// used entry if a new key would exceed capacity.
func (c *Synced[K, V]) Put(key K, value V) (Entry[K, V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Put(key, value)
}

// Remove deletes the entry for key and returns its value.
func (c *Synced[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Remove(key)
}

// Len returns the number of entries currently held.
func (c *Synced[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Cap returns the fixed capacity set at construction.
func (c *Synced[K, V]) Cap() int {
	return c.lru.Cap()
}

// IsEmpty reports whether the cache holds no entries.
func (c *Synced[K, V]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.IsEmpty()
}

// Clear removes all entries, leaving capacity unchanged.
func (c *Synced[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
}

// Keys returns a snapshot of all keys ordered from most to least recently
// used.
func (c *Synced[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

// Values returns a snapshot of all values ordered from most to least
// recently used.
func (c *Synced[K, V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Values()
}

// Items returns a snapshot of all entries ordered from most to least
// recently used.
func (c *Synced[K, V]) Items() []Entry[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Items()
}
