package geo

import (
	"sync"
	"time"

	"github.com/rubineta/claims-api/api"
)

type cacheEntry struct {
	cities    api.Cities
	expiresAt time.Time
}

// cityCache keeps one full city list per country code. Entries expire after
// the configured TTL and are refreshed lazily on the next lookup.
type cityCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newCityCache(ttl time.Duration) *cityCache {
	return &cityCache{
		ttl:     ttl,
		entries: map[string]cacheEntry{},
	}
}

func (c *cityCache) get(country string) (api.Cities, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[country]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.cities, true
}

func (c *cityCache) set(country string, cities api.Cities) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[country] = cacheEntry{
		cities:    cities,
		expiresAt: time.Now().Add(c.ttl),
	}
}
