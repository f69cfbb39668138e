// Package cache provides a generic, fixed-capacity LRU (Least Recently Used)
// cache for bounding in-memory state.
//
// The cache automatically evicts the least recently used entry when a new key
// is inserted at capacity, making it suitable wherever data should be cached
// without unbounded memory growth.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - O(1) Get, Put, Remove, Contains via a map index paired with a
//     doubly-linked recency list
//   - Evicted entries are returned from Put and optionally reported through
//     an eviction callback
//   - Snapshot iteration in most-recently-used to least-recently-used order
//   - Unsynchronized core with an optional mutex wrapper (Synced)
//
// # Usage
//
// Create a cache with a fixed capacity:
//
//	c, err := cache.New[string, int](100)
//	if err != nil {
//		// capacity was not positive
//	}
//
// Basic operations:
//
//	c.Put("a", 1)          // insert, entry becomes most recently used
//	v, ok := c.Get("a")    // lookup, promotes "a" on hit
//	v, ok = c.Peek("a")    // lookup without promotion
//	ok = c.Contains("a")   // membership check, no promotion
//	v, ok = c.Remove("a")  // delete, value handed back to caller
//	c.Clear()              // drop everything, capacity unchanged
//
// Put reports the entry it displaced, if any:
//
//	if evicted, ok := c.Put("b", 2); ok {
//		release(evicted.Key, evicted.Value)
//	}
//
// # Recency Semantics
//
// Entries become most recently used when retrieved with Get or inserted or
// updated with Put. Peek, Contains, and the snapshot methods never touch
// recency, so read-only inspection cannot change which entry is evicted
// next.
//
// # Iteration
//
// Keys, Values, and Items return snapshots taken at call time, ordered from
// most to least recently used. The returned slices are detached from the
// cache: mutating the cache while ranging over a snapshot is safe and does
// not change the snapshot.
//
// # Capacity
//
// Capacity is fixed at construction and must be positive; New fails with
// ErrInvalidCapacity otherwise. After every public operation Len() <= Cap()
// holds: updating an existing key never grows the cache, and inserting a new
// key at capacity evicts the least recently used entry first.
//
// # Resource Cleanup
//
// For values that hold resources, register an eviction callback to be
// notified when the cache discards entries on its own:
//
//	c, _ := cache.New[string, *sql.DB](10,
//		cache.WithEvictCallback(func(dsn string, db *sql.DB) {
//			db.Close()
//		}),
//	)
//
// The callback fires on capacity eviction and on Clear. Remove does not fire
// it: the removed value is returned to the caller, who owns it from then on.
//
// # Concurrency
//
// LRU itself is not synchronized and assumes exclusive access by one owner
// at a time. For shared use, NewSynced builds the same cache behind a mutex:
//
//	c, _ := cache.NewSynced[string, []byte](256)
//	go c.Put("k", data)
//	go c.Get("k")
package cache
