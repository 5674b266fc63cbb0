package serper

import (
	"context"
	"errors"
	"testing"
	"time"
)

// countingSearcher records how often upstream is hit
type countingSearcher struct {
	calls   int
	results []SearchResult
	err     error
}

func (s *countingSearcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestCachedSearcher_SecondCallWithin24HoursSkipsUpstream(t *testing.T) {
	upstream := &countingSearcher{
		results: []SearchResult{{Title: "Go", Link: "https://go.dev", Position: 1}},
	}
	cache := NewCachedSearcher(upstream)

	ctx := context.Background()

	first, err := cache.Search(ctx, "golang", 10)
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	second, err := cache.Search(ctx, "golang", 10)
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}

	if upstream.calls != 1 {
		t.Errorf("upstream calls = %d, want 1", upstream.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Link != first[0].Link {
		t.Errorf("cached results differ from original: %v vs %v", second, first)
	}
}

func TestCachedSearcher_EntryExpiresAfterTTL(t *testing.T) {
	upstream := &countingSearcher{
		results: []SearchResult{{Title: "Go", Position: 1}},
	}
	cache := NewCachedSearcher(upstream)

	current := time.Now()
	cache.now = func() time.Time { return current }

	ctx := context.Background()

	if _, err := cache.Search(ctx, "golang", 10); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	// Just inside the TTL: still cached
	current = current.Add(CacheTTL - time.Minute)
	if !cache.Hit("golang") {
		t.Error("expected cache hit just inside TTL")
	}

	// Past the TTL: entry dropped, upstream called again
	current = current.Add(2 * time.Minute)
	if cache.Hit("golang") {
		t.Error("expected cache miss past TTL")
	}
	if _, err := cache.Search(ctx, "golang", 10); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if upstream.calls != 2 {
		t.Errorf("upstream calls = %d, want 2", upstream.calls)
	}
}

func TestCachedSearcher_QueriesAreCachedIndependently(t *testing.T) {
	upstream := &countingSearcher{results: []SearchResult{{Title: "r"}}}
	cache := NewCachedSearcher(upstream)

	ctx := context.Background()

	if _, err := cache.Search(ctx, "first query", 10); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if cache.Hit("second query") {
		t.Error("unrelated query should not hit the cache")
	}
	if _, err := cache.Search(ctx, "second query", 10); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if upstream.calls != 2 {
		t.Errorf("upstream calls = %d, want 2", upstream.calls)
	}
}

func TestCachedSearcher_UpstreamErrorIsNotCached(t *testing.T) {
	upstream := &countingSearcher{err: errors.New("boom")}
	cache := NewCachedSearcher(upstream)

	ctx := context.Background()

	if _, err := cache.Search(ctx, "golang", 10); err == nil {
		t.Fatal("expected error from upstream")
	}
	if cache.Hit("golang") {
		t.Error("failed search must not populate the cache")
	}

	upstream.err = nil
	upstream.results = []SearchResult{{Title: "ok"}}
	if _, err := cache.Search(ctx, "golang", 10); err != nil {
		t.Fatalf("search after recovery failed: %v", err)
	}
	if upstream.calls != 2 {
		t.Errorf("upstream calls = %d, want 2", upstream.calls)
	}
}
