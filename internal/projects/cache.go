package projects

import (
	"sync"
	"time"
)

// ListingCache holds the public project listing for its TTL. Submissions
// invalidate it so the marketplace view picks up new projects on the next
// read, the same revalidation a CDN-backed frontend would trigger.
type ListingCache struct {
	mu      sync.RWMutex
	entries []*Project
	expires time.Time
	ttl     time.Duration
}

func NewListingCache(ttl time.Duration) *ListingCache {
	return &ListingCache{ttl: ttl}
}

// Get returns the cached listing, or (nil, false) when stale or empty.
func (c *ListingCache) Get() ([]*Project, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entries == nil || time.Now().After(c.expires) {
		return nil, false
	}
	return c.entries, true
}

// Set stores a fresh listing.
func (c *ListingCache) Set(entries []*Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	c.expires = time.Now().Add(c.ttl)
}

// Invalidate drops the cached listing.
func (c *ListingCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
