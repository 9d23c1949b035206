package morse

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheCapacity is the number of reverse tables a registry keeps
// unless configured otherwise.
const DefaultCacheCapacity = 64

// reverseTable maps a pattern to the character that owns it for one
// priority order. Tables are never modified after they are built.
type reverseTable map[Pattern]string

// reverseCache holds built reverse tables keyed by priority order
// signature. At most one table is built per signature while it stays
// cached. When full, the oldest table is evicted first.
type reverseCache struct {
	mu       sync.RWMutex
	tables   map[string]reverseTable
	fifo     []string
	capacity int
}

func newReverseCache(capacity int) *reverseCache {
	return &reverseCache{
		tables:   make(map[string]reverseTable),
		capacity: capacity,
	}
}

// get returns the cached table for order or builds it. A capacity of zero
// or less disables caching and builds on every call.
func (c *reverseCache) get(ctx context.Context, order PriorityOrder, build func(PriorityOrder) reverseTable) reverseTable {
	if c.capacity <= 0 {
		return timedBuild(ctx, order, build)
	}

	key := order.Signature()

	// Fast path: read-lock cache check
	c.mu.RLock()
	if cached, ok := c.tables[key]; ok {
		c.mu.RUnlock()
		return cached
	}
	c.mu.RUnlock()

	// Slow path: build and cache with write-lock
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check pattern
	if cached, ok := c.tables[key]; ok {
		return cached
	}

	table := timedBuild(ctx, order, build)

	for len(c.fifo) >= c.capacity {
		oldest := c.fifo[0]
		c.fifo = c.fifo[1:]
		delete(c.tables, oldest)
		emitReverseTableEvicted(ctx, oldest)
	}
	c.tables[key] = table
	c.fifo = append(c.fifo, key)
	return table
}

// Len returns the number of cached tables.
func (c *reverseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}

// Reset clears the cache.
// This is primarily useful for test isolation.
func (c *reverseCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = make(map[string]reverseTable)
	c.fifo = nil
}

func timedBuild(ctx context.Context, order PriorityOrder, build func(PriorityOrder) reverseTable) reverseTable {
	start := time.Now()
	table := build(order)
	emitReverseTableBuilt(ctx, order.Signature(), len(table), time.Since(start))
	return table
}
