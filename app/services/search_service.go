package services

import (
	"context"
	"fmt"

	"pressroom/app/models"
	"pressroom/app/repositories"
)

// TopSearchLimit is how many terms the top-searches views render.
const TopSearchLimit = 5

// ArticleFetcher fetches news articles for a query.
type ArticleFetcher interface {
	Everything(ctx context.Context, query string) ([]*models.Article, error)
}

// SearchResult is what a single search renders: the fetched articles
// plus the personal and site-wide top terms after counting.
type SearchResult struct {
	Query       string               `json:"query"`
	Articles    []*models.Article    `json:"articles"`
	TopPersonal []*models.SearchTerm `json:"top_personal,omitempty"`
	TopGlobal   []*models.SearchTerm `json:"top_global"`
	FetchError  string               `json:"fetch_error,omitempty"`
}

// SearchService proxies the news API and aggregates search counters
type SearchService struct {
	searchRepo repositories.SearchRepository
	fetcher    ArticleFetcher
}

// NewSearchService creates a new SearchService
func NewSearchService(searchRepo repositories.SearchRepository, fetcher ArticleFetcher) *SearchService {
	return &SearchService{
		searchRepo: searchRepo,
		fetcher:    fetcher,
	}
}

// Search fetches articles for the query and records the term in the
// per-user and site-wide counters. A fetch failure degrades to an
// empty article list with the error surfaced on the result; counting
// still happens. userID 0 means anonymous: only the site-wide counter
// is bumped and no personal top list is returned.
func (s *SearchService) Search(ctx context.Context, userID int, query string) (*SearchResult, error) {
	term := models.NormalizeTerm(query)
	if term == "" {
		return nil, fmt.Errorf("search query is required")
	}

	result := &SearchResult{Query: term}

	articles, err := s.fetcher.Everything(ctx, term)
	if err != nil {
		result.FetchError = err.Error()
	} else {
		result.Articles = articles
	}

	if err := s.searchRepo.Increment(0, term); err != nil {
		return nil, fmt.Errorf("failed to record search: %v", err)
	}
	if userID > 0 {
		if err := s.searchRepo.Increment(userID, term); err != nil {
			return nil, fmt.Errorf("failed to record search: %v", err)
		}
		top, err := s.searchRepo.Top(userID, TopSearchLimit)
		if err != nil {
			return nil, err
		}
		result.TopPersonal = top
	}

	global, err := s.searchRepo.Top(0, TopSearchLimit)
	if err != nil {
		return nil, err
	}
	result.TopGlobal = global

	return result, nil
}

// TopSearches returns a user's most frequent search terms
func (s *SearchService) TopSearches(userID int) ([]*models.SearchTerm, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user ID")
	}
	return s.searchRepo.Top(userID, TopSearchLimit)
}

// GlobalTopSearches returns the site-wide most frequent search terms
func (s *SearchService) GlobalTopSearches() ([]*models.SearchTerm, error) {
	return s.searchRepo.Top(0, TopSearchLimit)
}
