package report

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cache is a single-slot, time-boxed store for the last computed payload.
// It is overwritten wholesale on every recomputation and never partially
// updated. Safe for concurrent use.
type Cache struct {
	ttl   time.Duration
	clock clockwork.Clock

	mu         sync.Mutex
	payload    *Payload
	computedAt time.Time
}

// NewCache creates an empty cache with the given freshness window.
// Pass a fake clock in tests to control aging.
func NewCache(ttl time.Duration, clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{ttl: ttl, clock: clock}
}

// Get returns the cached payload and its age when the cache is fresh.
// ok is false when the cache is empty or the entry has aged out.
func (c *Cache) Get() (payload *Payload, age time.Duration, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.payload == nil {
		return nil, 0, false
	}
	age = c.clock.Since(c.computedAt)
	if age >= c.ttl {
		return nil, 0, false
	}
	return c.payload, age, true
}

// Set overwrites the cache with a freshly computed payload.
func (c *Cache) Set(payload *Payload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
	c.computedAt = c.clock.Now()
}

// Clear empties the cache immediately; the next Get misses.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = nil
	c.computedAt = time.Time{}
}

// Age returns the age of the cached entry and whether one exists, fresh or
// not. Used by the health endpoint.
func (c *Cache) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil {
		return 0, false
	}
	return c.clock.Since(c.computedAt), true
}

// TTL returns the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
