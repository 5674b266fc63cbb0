package service

import (
	"context"
	"errors"
	"testing"

	"omnidesk/internal/domain"
	"omnidesk/internal/domain/services"
	"omnidesk/internal/upstream/serper"
)

// countingSearcher records how often upstream is hit
type countingSearcher struct {
	calls   int
	results []serper.SearchResult
}

func (s *countingSearcher) Search(ctx context.Context, query string, maxResults int) ([]serper.SearchResult, error) {
	s.calls++
	return s.results, nil
}

func TestSearchService_SecondSearchIsCached(t *testing.T) {
	upstream := &countingSearcher{results: []serper.SearchResult{{Title: "Go", Link: "https://go.dev"}}}
	svc := NewSearchService(upstream, false, testLogger())

	ctx := context.Background()
	req := &services.SearchRequest{Query: "golang"}

	first, err := svc.Search(ctx, req)
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	if first.Cached {
		t.Error("first search must not report cached")
	}

	second, err := svc.Search(ctx, req)
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if !second.Cached {
		t.Error("second search within TTL must report cached")
	}
	if upstream.calls != 1 {
		t.Errorf("upstream calls = %d, want 1", upstream.calls)
	}
	if len(second.Results) != 1 || second.Results[0].Link != "https://go.dev" {
		t.Errorf("unexpected cached results: %v", second.Results)
	}
}

func TestSearchService_NoCacheBypassesCache(t *testing.T) {
	upstream := &countingSearcher{results: []serper.SearchResult{{Title: "Go"}}}
	svc := NewSearchService(upstream, false, testLogger())

	ctx := context.Background()

	if _, err := svc.Search(ctx, &services.SearchRequest{Query: "golang"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	resp, err := svc.Search(ctx, &services.SearchRequest{Query: "golang", NoCache: true})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if resp.Cached {
		t.Error("no_cache search must not report cached")
	}
	if upstream.calls != 2 {
		t.Errorf("upstream calls = %d, want 2", upstream.calls)
	}
}

func TestSearchService_DisabledCacheAlwaysGoesUpstream(t *testing.T) {
	upstream := &countingSearcher{results: []serper.SearchResult{{Title: "Go"}}}
	svc := NewSearchService(upstream, true, testLogger())

	ctx := context.Background()
	req := &services.SearchRequest{Query: "golang"}

	for i := 0; i < 3; i++ {
		resp, err := svc.Search(ctx, req)
		if err != nil {
			t.Fatalf("search %d failed: %v", i, err)
		}
		if resp.Cached {
			t.Errorf("search %d reported cached with cache disabled", i)
		}
	}
	if upstream.calls != 3 {
		t.Errorf("upstream calls = %d, want 3", upstream.calls)
	}
}

func TestSearchService_Validation(t *testing.T) {
	svc := NewSearchService(&countingSearcher{}, false, testLogger())

	_, err := svc.Search(context.Background(), &services.SearchRequest{Query: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty query error = %v, want validation error", err)
	}

	_, err = svc.Search(context.Background(), &services.SearchRequest{Query: "q", MaxResults: 100})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("oversized max_results error = %v, want validation error", err)
	}
}
