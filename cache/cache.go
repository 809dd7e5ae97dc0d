// Package cache is an in-memory key-value store whose entries expire.
package cache

import (
	"sort"
	"sync"
	"time"
)

type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]

	// now is swapped out in tests.
	now func() time.Time
}

type entry[V any] struct {
	value V
	exp   time.Time
}

func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	e := entry[V]{
		value: value,
		exp:   c.now().Add(ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = e
}

// Get returns the value stored under key, or the zero value if there is none
// or it has expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var val V

	e, ok := c.entries[key]
	if !ok {
		return val, false
	}

	// Present and unexpired
	if c.now().Before(e.exp) {
		return e.value, true
	}

	// Expired
	delete(c.entries, key)
	return val, false
}

// Values returns every unexpired value, ordered by key.
func (c *Cache[V]) Values() []V {
	c.clean()

	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make([]V, len(keys))
	for i, k := range keys {
		vals[i] = c.entries[k].value
	}
	return vals
}

// Len returns the number of unexpired entries.
func (c *Cache[V]) Len() int {
	c.clean()

	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache[V]) clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	toRemove := []string{}

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.exp) {
			toRemove = append(toRemove, k)
		}
	}

	for _, k := range toRemove {
		delete(c.entries, k)
	}
}
