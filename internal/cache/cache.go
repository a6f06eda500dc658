// Package cache provides an in-memory TTL cache with in-flight request
// deduplication: concurrent callers for the same key share a single fetch.
package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// pendingCall is the shared in-flight token for one key. Waiters block on
// done; the fetch outcome (value or error) is visible to all of them.
type pendingCall[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// TTLCache is a keyed cache whose entries are valid for a fixed duration.
// Expired entries are evicted lazily on the next read; there is no active
// sweep, so diverse key sets grow until individually read-and-expired.
type TTLCache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
	pending map[string]*pendingCall[T]
	now     func() time.Time
}

// New creates a TTLCache with the given entry lifetime.
func New[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		pending: make(map[string]*pendingCall[T]),
		now:     time.Now,
	}
}

// Get returns the cached value for key if present and not expired.
// A stale entry is evicted on the way out.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *TTLCache[T]) getLocked(key string) (T, bool) {
	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Put stores value under key with the current timestamp, overwriting any
// prior entry. Last writer wins.
func (c *TTLCache[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, storedAt: c.now()}
}

// Len returns the number of stored entries, expired or not.
func (c *TTLCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetOrFetch returns the cached value for key, or invokes fetch to produce
// it. Concurrent callers for the same key share one fetch: the first caller
// creates the in-flight token and runs fetch, later callers await its
// outcome. The token is removed when the fetch settles, success or failure,
// so a failed fetch never blocks future retries. Fetch errors are returned
// to every waiting caller and are never cached.
//
// The fetch runs to completion even if ctx is cancelled; only this caller's
// wait is abandoned. A completed fetch still warms the cache for later
// callers.
func (c *TTLCache[T]) GetOrFetch(ctx context.Context, key string, fetch func() (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	if v, ok := c.getLocked(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	if p, ok := c.pending[key]; ok {
		c.mu.Unlock()
		select {
		case <-p.done:
			return p.value, p.err
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
	p := &pendingCall[T]{done: make(chan struct{})}
	c.pending[key] = p
	c.mu.Unlock()

	p.value, p.err = fetch()

	c.mu.Lock()
	if p.err == nil {
		c.entries[key] = entry[T]{value: p.value, storedAt: c.now()}
	}
	delete(c.pending, key)
	c.mu.Unlock()
	close(p.done)

	return p.value, p.err
}
