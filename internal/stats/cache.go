package stats

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

const liveStatsKey = "live"

// liveStatsCache holds the last computed live stats until the TTL passes
// or a mutation event purges it. Every purge bumps the generation, and a
// computation started before a purge is not stored.
type liveStatsCache struct {
	mu  sync.Mutex
	gen uint64
	lru *expirable.LRU[string, domain.TreeStats]
}

func newLiveStatsCache(ttl time.Duration) *liveStatsCache {
	return &liveStatsCache{
		lru: expirable.NewLRU[string, domain.TreeStats](1, nil, ttl),
	}
}

// Get returns a copy of the cached stats and the generation it was read at
func (c *liveStatsCache) Get() (domain.TreeStats, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.lru.Get(liveStatsKey)
	if !ok {
		return domain.TreeStats{}, c.gen, false
	}
	return s.Clone(), c.gen, true
}

// SetIfCurrent stores s unless the cache was cleared after gen was read
func (c *liveStatsCache) SetIfCurrent(gen uint64, s domain.TreeStats) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	c.lru.Add(liveStatsKey, s.Clone())
	return true
}

// Clear removes all entries from the cache.
func (c *liveStatsCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.lru.Purge()
}
