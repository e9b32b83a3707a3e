package leaderboard

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tovald/bossraid/internal/domain"
)

// allTimeCache shields the all-time leaderboard query from request storms.
// The view tolerates short staleness, so a small TTL cache per limit is
// enough.
type allTimeCache struct {
	lru *expirable.LRU[string, []domain.AllTimeEntry]
}

// newAllTimeCache creates a cache with the given size and TTL.
func newAllTimeCache(size int, ttl time.Duration) *allTimeCache {
	return &allTimeCache{
		lru: expirable.NewLRU[string, []domain.AllTimeEntry](size, nil, ttl),
	}
}

// Get retrieves the cached page for a limit.
func (c *allTimeCache) Get(limit int) ([]domain.AllTimeEntry, bool) {
	return c.lru.Get(strconv.Itoa(limit))
}

// Set stores the page for a limit.
func (c *allTimeCache) Set(limit int, entries []domain.AllTimeEntry) {
	c.lru.Add(strconv.Itoa(limit), entries)
}

// Purge drops all cached pages. Called after a lifetime-stat flush would
// make the cached order visibly stale in tests.
func (c *allTimeCache) Purge() {
	c.lru.Purge()
}
