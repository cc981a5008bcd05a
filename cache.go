package naivedate

import "sync"

// DefaultCacheCapacity is the number of years retained by a Cache created
// with a non-positive capacity.
const DefaultCacheCapacity = 32

// Cache memoizes the canonical date strings of whole years for completion.
// When an insert would exceed its capacity the cache is emptied first; it
// only ever costs recomputation, never correctness. A Cache is safe for
// concurrent use and may be shared by several Calendars. A nil *Cache is
// usable and caches nothing.
type Cache struct {
	mu        sync.Mutex
	capacity  int
	years     map[int][]string
	hits      uint64
	misses    uint64
	evictions uint64
}

// CacheStats is a snapshot of a Cache's counters.
type CacheStats struct {
	Entries   int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewCache creates a Cache holding at most capacity years.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		years:    make(map[int][]string),
	}
}

// get returns the cached days of year. A nil Cache always misses.
func (c *Cache) get(year int) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	days, ok := c.years[year]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return days, ok
}

// put stores days for year and reports whether the cache had to be cleared
// to make room.
func (c *Cache) put(year int, days []string) (evicted bool) {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.years[year]; !ok && len(c.years) >= c.capacity {
		clear(c.years)
		c.evictions++
		evicted = true
	}
	c.years[year] = days
	return evicted
}

// Len returns the number of years currently cached.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.years)
}

// Clear empties the cache. Counters are retained.
func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.years)
}

// Stats returns a snapshot of the cache counters. A nil Cache reports zero
// stats.
func (c *Cache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Entries:   len(c.years),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
