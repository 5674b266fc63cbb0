package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/services"
	"omnidesk/internal/upstream/serper"
)

// searchService implements the SearchService interface
type searchService struct {
	cache    *serper.CachedSearcher
	direct   serper.Searcher
	disabled bool
	logger   *slog.Logger
}

// NewSearchService creates a new search service. When disabled is true
// (SEARCH_CACHE_DISABLED), every query goes straight upstream.
func NewSearchService(direct serper.Searcher, disabled bool, logger *slog.Logger) services.SearchService {
	return &searchService{
		cache:    serper.NewCachedSearcher(direct),
		direct:   direct,
		disabled: disabled,
		logger:   logger,
	}
}

// Search runs a web search through the 24-hour cache unless the request
// or configuration bypasses it.
func (s *searchService) Search(ctx context.Context, req *services.SearchRequest) (*services.SearchResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if s.disabled || req.NoCache {
		results, err := s.direct.Search(ctx, req.Query, req.MaxResults)
		if err != nil {
			return nil, err
		}
		return &services.SearchResponse{Query: req.Query, Results: results, Cached: false}, nil
	}

	hit := s.cache.Hit(req.Query)
	results, err := s.cache.Search(ctx, req.Query, req.MaxResults)
	if err != nil {
		return nil, err
	}

	if hit {
		s.logger.Debug("search cache hit", "query", req.Query)
	}

	return &services.SearchResponse{Query: req.Query, Results: results, Cached: hit}, nil
}

func (s *searchService) validateRequest(req *services.SearchRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Query, validation.Required, validation.Length(1, 512)),
		validation.Field(&req.MaxResults, validation.Min(0), validation.Max(config.MaxSearchResults)),
	)
}
