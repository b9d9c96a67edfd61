package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most capacity entries.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	order    lruList[K]
	capacity int
	onEvict  func(K, V)
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvict sets a callback run, under the cache lock, for every entry
// evicted or cleared.
func WithEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// New creates a cache holding at most capacity entries. A capacity below 1
// is treated as 1.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: max(capacity, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. create runs under the cache lock, so concurrent callers never
// build the same key twice. Errors are returned and not cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.order.moveToFront(e.node)
		return e.value, nil
	}

	v, err := create()
	if err != nil {
		return v, err
	}
	c.entries[key] = &entry[K, V]{value: v, node: c.order.pushFront(key)}
	for c.order.len > c.capacity {
		c.evictOldest()
	}
	return v, nil
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear evicts every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.order.len > 0 {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entry. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	key, ok := c.order.removeOldest()
	if !ok {
		return
	}
	e := c.entries[key]
	delete(c.entries, key)
	if c.onEvict != nil {
		c.onEvict(key, e.value)
	}
}
