package cache

import "sync"

// Cache memoises values by key. When more than limit entries are held the
// least recently used entry is evicted and passed to the release hook.
//
// Cache is safe for concurrent use and must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    uint64
	release func(K, V)
}

type entry[V any] struct {
	value V
	atime uint64
}

// New creates a cache holding at most limit entries. A limit of 0 means
// unlimited. release, if non-nil, is called for each evicted entry.
func New[K comparable, V any](limit int, release func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
		release: release,
	}
}

// Get returns the cached value for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the cache lock so it is invoked at most once per key
// while the entry stays cached. A create error is returned and nothing is
// stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value, nil
	}

	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[key] = &entry[V]{value: v, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evictOldest()
	}
	return v, nil
}

// Delete removes key, calling the release hook if it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	delete(c.entries, key)
	if c.release != nil {
		c.release(key, e.value)
	}
	return true
}

// Clear releases and removes every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.release != nil {
		for k, e := range c.entries {
			c.release(k, e.value)
		}
	}
	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest drops the least recently used entry. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	var (
		oldest K
		atime  uint64
		found  bool
	)
	for k, e := range c.entries {
		if !found || e.atime < atime {
			oldest, atime, found = k, e.atime, true
		}
	}
	if !found {
		return
	}
	e := c.entries[oldest]
	delete(c.entries, oldest)
	if c.release != nil {
		c.release(oldest, e.value)
	}
}
