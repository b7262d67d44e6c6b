// Package service contains the business logic for the carton service.
package service

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shipper1953/carton-service/internal/domain/model"
	"github.com/shipper1953/carton-service/internal/metrics"
	"github.com/shipper1953/carton-service/internal/service/cache"
)

// ttlCache is a thread-safe LRU cache with TTL expiration for cartonization
// results. It implements the cache.Cache interface.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[uint64]*list.Element
	order    *list.List // front = most recently used
	stopCh   chan struct{}
	stopOnce sync.Once

	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key       uint64
	value     model.CartonizationResult
	expiresAt time.Time
}

// NewResultCache creates a shared TTL-based LRU result cache.
func NewResultCache(capacity int, ttl time.Duration) cache.Cache {
	return newTTLCache(capacity, ttl)
}

// newTTLCache creates a TTL-based LRU cache. A background goroutine removes
// expired entries once per minute.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[uint64]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns a cached result if present and not expired.
func (c *ttlCache) Get(key uint64) (model.CartonizationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.CartonizationResult{}, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(el)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.CartonizationResult{}, false
	}

	c.order.MoveToFront(el)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a result, evicting the least recently used entry at capacity.
func (c *ttlCache) Set(key uint64, value model.CartonizationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.order.MoveToFront(el)
		metrics.RecordCacheOperation("set", "success")
		return
	}

	el := c.order.PushFront(&cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.entries[key] = el

	if c.order.Len() > c.capacity {
		if tail := c.order.Back(); tail != nil {
			c.removeElement(tail)
			atomic.AddInt64(&c.evictions, 1)
			metrics.RecordCacheOperation("evict", "capacity")
		}
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes a single key.
func (c *ttlCache) Invalidate(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.removeElement(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*list.Element, c.capacity)
	c.order.Init()
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	metrics.RecordCacheOperation("clear", "success")
}

// Stop shuts down the background cleanup goroutine.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.entries),
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}

// removeElement must be called with the mutex held.
func (c *ttlCache) removeElement(el *list.Element) {
	entry := el.Value.(*cacheEntry)
	delete(c.entries, entry.key)
	c.order.Remove(el)
}
