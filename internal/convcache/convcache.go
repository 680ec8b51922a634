// Package convcache memoizes Stringify results for cmd/numconv's batch
// command, which is the one place in this repository where the same
// double (e.g. a repeated default value in a column of floats) is likely
// to be converted many times in a single run.
package convcache

import (
	"container/list"
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache is a fixed-capacity, mutex-guarded LRU mapping (bit pattern, radix)
// pairs to their rendered string. It is shared mutable state by design --
// unlike the CORE engine, which holds none -- so every exported method
// takes the lock itself.
//
// The zero value has capacity 0 and behaves as a pass-through: Get always
// misses and Put is a no-op, so a disabled cache (config.Config.CacheSize
// == 0) costs only the caller's Key computation.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[uint64]*list.Element
	order    *list.List
}

type cacheEntry struct {
	key   uint64
	value string
}

// New returns a Cache holding at most capacity entries. capacity <= 0
// yields a disabled cache.
func New(capacity int) *Cache {
	if capacity <= 0 {
		return &Cache{}
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[uint64]*list.Element, capacity),
		order:    list.New(),
	}
}

// Key hashes (x, radix) into the lookup key Get/Put expect, using
// xxhash.Sum64 over the float's big-endian bit pattern followed by the
// radix byte -- an arbitrary but fixed encoding, since the hash is never
// persisted or compared across processes.
func Key(x float64, radix int) uint64 {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[:8], math.Float64bits(x))
	buf[8] = byte(radix)
	return xxhash.Sum64(buf[:])
}

// Get returns the cached string for key and whether it was present,
// promoting the entry to most-recently-used on a hit.
func (c *Cache) Get(key uint64) (string, bool) {
	if c.capacity == 0 {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).value, true
}

// Put inserts or updates key's value, evicting the least-recently-used
// entry if the cache is at capacity.
func (c *Cache) Put(key uint64, value string) {
	if c.capacity == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).value = value
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	elem := c.order.PushFront(&cacheEntry{key: key, value: value})
	c.entries[key] = elem
}

// Len reports the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.order == nil {
		return 0
	}
	return c.order.Len()
}
