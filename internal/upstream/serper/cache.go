package serper

import (
	"context"
	"sync"
	"time"
)

// CacheTTL is how long a search result stays valid. Expiry is checked
// on read; there is no background eviction and no size bound.
const CacheTTL = 24 * time.Hour

type cacheEntry struct {
	results   []SearchResult
	timestamp time.Time
}

// CachedSearcher wraps a Searcher with a process-wide in-memory cache
// keyed by query. Entries expire after CacheTTL. The mutex guards the
// map; the worst a lost race costs is a duplicate upstream call.
type CachedSearcher struct {
	upstream Searcher
	mu       sync.Mutex
	entries  map[string]cacheEntry
	now      func() time.Time
}

// NewCachedSearcher wraps upstream with the 24-hour cache.
func NewCachedSearcher(upstream Searcher) *CachedSearcher {
	return &CachedSearcher{
		upstream: upstream,
		entries:  make(map[string]cacheEntry),
		now:      time.Now,
	}
}

// Search returns cached results when a fresh entry exists, otherwise
// calls upstream and stores the result.
func (c *CachedSearcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if results, ok := c.lookup(query); ok {
		return results, nil
	}

	results, err := c.upstream.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[query] = cacheEntry{results: results, timestamp: c.now()}
	c.mu.Unlock()

	return results, nil
}

// Hit reports whether a fresh entry exists for the query without
// touching upstream.
func (c *CachedSearcher) Hit(query string) bool {
	_, ok := c.lookup(query)
	return ok
}

func (c *CachedSearcher) lookup(query string) ([]SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.timestamp) > CacheTTL {
		// Expired; drop it so the map doesn't accumulate dead entries
		delete(c.entries, query)
		return nil, false
	}
	return entry.results, true
}
