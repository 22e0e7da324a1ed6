package git

import (
	"sync"
	"time"

	"barra/internal/domain"
	"barra/internal/logging"

	"golang.org/x/sync/singleflight"
)

// statusCacheTTL is how long a resolved status stays valid without
// re-running git. Event-driven invalidation (branch change, turn end)
// provides freshness inside the window.
const statusCacheTTL = 2000 * time.Millisecond

// cacheEntry is the single slot: the resolved status (nil meaning "not a
// repo", which is just as valid a result) and when it was resolved.
type cacheEntry struct {
	status     *domain.GitStatus
	resolvedAt time.Time
}

// StatusCache is a single-slot, time-boxed cache in front of a Resolver.
// It is owned by a controller instance, not shared process-wide, so
// independent controllers (and tests) never observe each other's state.
type StatusCache struct {
	resolver *Resolver
	dir      string
	ttl      time.Duration

	mu    sync.Mutex
	entry *cacheEntry
	group singleflight.Group
}

// NewStatusCache creates a cache resolving against dir with the default TTL.
func NewStatusCache(resolver *Resolver, dir string) *StatusCache {
	return NewStatusCacheWithTTL(resolver, dir, statusCacheTTL)
}

// NewStatusCacheWithTTL creates a cache with a custom TTL.
func NewStatusCacheWithTTL(resolver *Resolver, dir string, ttl time.Duration) *StatusCache {
	return &StatusCache{
		resolver: resolver,
		dir:      dir,
		ttl:      ttl,
	}
}

// Get returns the cached status when the entry is younger than the TTL,
// otherwise resolves afresh and stores the result. A cached nil ("not a
// repo") does not trigger re-probing within the TTL. Concurrent callers
// during a refresh share a single resolution.
func (c *StatusCache) Get() *domain.GitStatus {
	c.mu.Lock()
	if c.entry != nil && time.Since(c.entry.resolvedAt) < c.ttl {
		status := c.entry.status
		c.mu.Unlock()
		return status
	}
	c.mu.Unlock()

	result, _, _ := c.group.Do("status", func() (interface{}, error) {
		logging.Logger.Debug("Resolving git status", "dir", c.dir)
		status := c.resolver.Resolve(c.dir)

		c.mu.Lock()
		c.entry = &cacheEntry{status: status, resolvedAt: time.Now()}
		c.mu.Unlock()

		return status, nil
	})

	status, _ := result.(*domain.GitStatus)
	return status
}

// Invalidate clears the slot unconditionally; the next Get always
// re-resolves regardless of elapsed time. Safe to call before any entry
// has ever been set.
func (c *StatusCache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
