package textmeasure

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// DefaultCacheCapacity is the default number of memoized measurements.
const DefaultCacheCapacity = 512

type measureKey struct {
	text string
	size float64
}

type measureEntry struct {
	key  measureKey
	size Size
}

// CachedMeasurer memoizes the results of an inner Measurer behind an LRU.
// Shaping runs once per distinct (text, size) pair; the per-keystroke bounds
// refresh during editing then costs a map lookup instead of a full shape.
//
// CachedMeasurer is safe for concurrent use even though the engine itself is
// single-threaded, so one cache can back several engines.
type CachedMeasurer struct {
	mu       sync.Mutex
	inner    Measurer
	capacity int
	entries  map[measureKey]*list.Element
	lru      *list.List // front is most recently used

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCachedMeasurer wraps a measurer with an LRU of the given capacity.
// Non-positive capacities fall back to DefaultCacheCapacity.
func NewCachedMeasurer(inner Measurer, capacity int) *CachedMeasurer {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &CachedMeasurer{
		inner:    inner,
		capacity: capacity,
		entries:  make(map[measureKey]*list.Element),
		lru:      list.New(),
	}
}

// Measure returns the cached extent or shapes through the inner measurer.
func (c *CachedMeasurer) Measure(text string, size float64) Size {
	key := measureKey{text: text, size: size}

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		result := el.Value.(measureEntry).size
		c.mu.Unlock()
		c.hits.Add(1)
		return result
	}
	c.mu.Unlock()
	c.misses.Add(1)

	result := c.inner.Measure(text, size)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return result
	}
	c.entries[key] = c.lru.PushFront(measureEntry{key: key, size: result})
	for len(c.entries) > c.capacity {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(measureEntry).key)
	}
	return result
}

// Len returns the number of memoized measurements.
func (c *CachedMeasurer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *CachedMeasurer) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
