package services

import (
	"context"

	"omnidesk/internal/upstream/serper"
)

// SearchRequest is a web search query. NoCache forces a fresh upstream
// call even when a cached result exists.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
	NoCache    bool   `json:"no_cache"`
}

// SearchResponse carries results plus whether they came from the cache
type SearchResponse struct {
	Query   string                `json:"query"`
	Results []serper.SearchResult `json:"results"`
	Cached  bool                  `json:"cached"`
}

// SearchService defines cached web search
type SearchService interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
}
