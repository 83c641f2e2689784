package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"pressroom/app/middleware"
	"pressroom/app/models"
	"pressroom/app/repositories"
	"pressroom/app/services"

	"github.com/dgraph-io/badger/v4"
)

// SearchController handles news search and top-search views
type SearchController struct {
	searchService *services.SearchService
	templates     map[string]*template.Template
}

// SetService sets the search service for testing
func (sc *SearchController) SetService(service *services.SearchService) {
	sc.searchService = service
}

// NewSearchController creates a new SearchController backed by db and
// the given article fetcher
func NewSearchController(db *badger.DB, fetcher services.ArticleFetcher, basePath string) *SearchController {
	searchRepo := repositories.NewBadgerSearchRepository(db)
	searchService := services.NewSearchService(searchRepo, fetcher)

	return &SearchController{
		searchService: searchService,
		templates:     loadSearchTemplates(basePath),
	}
}

// loadSearchTemplates loads and parses all search-related templates
func loadSearchTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["results"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/search/results.html"),
	))
	return templates
}

// Search runs a news search for the q parameter and renders the
// results with the top-search lists. Without q it renders the empty
// search page.
func (sc *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	userID := 0
	if user != nil {
		userID = user.ID
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		if isAPIRequest(r) {
			sendError(w, r, "q parameter is required", http.StatusBadRequest)
			return
		}
		sc.render(w, r, user, nil)
		return
	}

	result, err := sc.searchService.Search(r.Context(), userID, query)
	if err != nil {
		sendError(w, r, "Search failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, result)
	} else {
		sc.render(w, r, user, result)
	}
}

// TopSearches serves the aggregated top-search lists as JSON: the
// site-wide list always, the personal list when authenticated.
func (sc *SearchController) TopSearches(w http.ResponseWriter, r *http.Request) {
	global, err := sc.searchService.GlobalTopSearches()
	if err != nil {
		sendError(w, r, "Failed to fetch top searches: "+err.Error(), http.StatusInternalServerError)
		return
	}

	payload := map[string]interface{}{"global": global}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		personal, err := sc.searchService.TopSearches(user.ID)
		if err != nil {
			sendError(w, r, "Failed to fetch top searches: "+err.Error(), http.StatusInternalServerError)
			return
		}
		payload["personal"] = personal
	}

	sendJSON(w, payload)
}

func (sc *SearchController) render(w http.ResponseWriter, r *http.Request, user *models.User, result *services.SearchResult) {
	data := struct {
		CurrentUser *models.User
		Result      *services.SearchResult
	}{
		CurrentUser: user,
		Result:      result,
	}
	if err := sc.templates["results"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
