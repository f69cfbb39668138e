package cache

import (
	"container/list"
	"fmt"
)

// Entry is a key/value pair held by the cache. It is the unit returned by
// Items and by eviction on Put.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Option configures an LRU at construction time.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn to be called whenever the cache discards an
// entry on its own: capacity eviction during Put and teardown during Clear.
// Entries handed back to the caller through Remove are not reported.
// Useful for cleanup of resources held by values, or for logging eviction
// events.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = fn
	}
}

// LRU is a fixed-capacity cache evicting the least recently used entry when
// a new key is inserted at capacity.
//
// It pairs a map index with a doubly-linked recency list: the map gives O(1)
// lookup of an entry's list element, the list gives O(1) promotion to the
// most-recently-used front and O(1) eviction from the least-recently-used
// back. Every public operation leaves Len() <= Cap().
//
// LRU is not synchronized. It assumes a single owner; wrap it in Synced (or
// your own lock) when sharing across goroutines.
type LRU[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	onEvict  func(key K, value V)
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// New creates an LRU with the given capacity. Capacity must be positive;
// anything else fails with ErrInvalidCapacity at construction time.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRU[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is like New but panics on invalid capacity. For capacities known
// at compile time.
func MustNew[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	c, err := New[K, V](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get retrieves the value for key and promotes it to most recently used.
// Returns the zero value and false on a miss; a miss has no side effects and
// never evicts.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Peek retrieves the value for key without updating its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present without updating its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Put inserts or updates the value for key and makes it the most recently
// used entry.
//
// Updating an existing key never evicts. Inserting a new key while the cache
// is full evicts the least recently used entry first; the evicted entry is
// returned with evicted == true so the caller can reclaim it.
func (c *LRU[K, V]) Put(key K, value V) (evictedEntry Entry[K, V], evicted bool) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*lruEntry[K, V]).value = value
		return Entry[K, V]{}, false
	}

	if c.order.Len() == c.capacity {
		evictedEntry, evicted = c.evictOldest()
	}

	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	return evictedEntry, evicted
}

// Remove deletes the entry for key and returns its value. The recency order
// of the remaining entries is unchanged. The eviction callback is not
// invoked; ownership of the value transfers to the caller via the return.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry[K, V])
		c.order.Remove(elem)
		delete(c.items, entry.key)
		return entry.value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of entries currently held.
func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}

// Cap returns the fixed capacity set at construction.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// IsEmpty reports whether the cache holds no entries.
func (c *LRU[K, V]) IsEmpty() bool {
	return c.order.Len() == 0
}

// Clear removes all entries, leaving capacity unchanged. The eviction
// callback, if set, is invoked for each discarded entry.
func (c *LRU[K, V]) Clear() {
	if c.onEvict != nil {
		for elem := c.order.Front(); elem != nil; elem = elem.Next() {
			entry := elem.Value.(*lruEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Keys returns a snapshot of all keys ordered from most to least recently
// used. Taking the snapshot does not affect recency.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*lruEntry[K, V]).key)
	}
	return keys
}

// Values returns a snapshot of all values ordered from most to least
// recently used.
func (c *LRU[K, V]) Values() []V {
	values := make([]V, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		values = append(values, elem.Value.(*lruEntry[K, V]).value)
	}
	return values
}

// Items returns a snapshot of all entries ordered from most to least
// recently used. The slice is independent of the cache: mutating the cache
// afterwards does not change it.
func (c *LRU[K, V]) Items() []Entry[K, V] {
	items := make([]Entry[K, V], 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		entry := elem.Value.(*lruEntry[K, V])
		items = append(items, Entry[K, V]{Key: entry.key, Value: entry.value})
	}
	return items
}

// evictOldest removes the least recently used entry and reports it.
func (c *LRU[K, V]) evictOldest() (Entry[K, V], bool) {
	elem := c.order.Back()
	if elem == nil {
		return Entry[K, V]{}, false
	}
	entry := elem.Value.(*lruEntry[K, V])
	c.order.Remove(elem)
	delete(c.items, entry.key)
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
	return Entry[K, V]{Key: entry.key, Value: entry.value}, true
}
