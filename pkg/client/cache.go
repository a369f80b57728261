package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL bounds how long a cached read is served without refetching.
const DefaultCacheTTL = 30 * time.Second

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// QueryCache memoizes reads by key ("students", "students:42") and collapses
// concurrent fetches of the same key into one request.
type QueryCache struct {
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewQueryCache creates a cache. A non-positive ttl falls back to DefaultCacheTTL.
func NewQueryCache(ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &QueryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Invalidate drops every key equal to prefix or scoped under it, such as
// "prefix:7" or "prefix?student_id=3".
func (c *QueryCache) Invalidate(prefix string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == prefix || strings.HasPrefix(key, prefix+":") || strings.HasPrefix(key, prefix+"?") {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of live entries.
func (c *QueryCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *QueryCache) lookup(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (c *QueryCache) store(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Fetch returns the cached value for key or runs fetch once for all concurrent
// callers. The shared fetch is detached from the caller's cancellation; a caller
// whose ctx ends stops waiting without failing the others. Failed fetches are
// not cached. A nil cache always calls fetch.
func Fetch[T any](ctx context.Context, cache *QueryCache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if cache == nil {
		return fetch(ctx)
	}
	if value, ok := cache.lookup(key); ok {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}

	results := cache.group.DoChan(key, func() (interface{}, error) {
		result, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		cache.store(key, result)
		return result, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return zero, result.Err
		}
		return result.Val.(T), nil
	}
}
