// Package news is a thin client for the newsapi.org "everything"
// endpoint.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pressroom/app/models"
)

const (
	// DefaultBaseURL is the public newsapi.org endpoint.
	DefaultBaseURL = "https://newsapi.org/v2/everything"

	// MaxArticles caps how many articles a search returns.
	MaxArticles = 40

	defaultTimeout = 10 * time.Second
)

// Client calls the news API with a fixed key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a news API client. An empty baseURL falls back to
// the public endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
}

type apiResponse struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

// Everything fetches English articles for a query, newest first,
// limited to MaxArticles.
func (c *Client) Everything(ctx context.Context, query string) ([]*models.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news API request failed: %v", err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode news API response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		if body.Message != "" {
			return nil, fmt.Errorf("news API error: %s", body.Message)
		}
		return nil, fmt.Errorf("news API returned status %d", resp.StatusCode)
	}

	articles := make([]*models.Article, 0, len(body.Articles))
	for i, a := range body.Articles {
		if i >= MaxArticles {
			break
		}
		articles = append(articles, &models.Article{
			Source:      a.Source.Name,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
