package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pressroom/app/config"
	"pressroom/app/middleware"
	"pressroom/app/models"
	"pressroom/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// stubFetcher stands in for the news API in route tests.
type stubFetcher struct {
	articles []*models.Article
	err      error
}

func (f *stubFetcher) Everything(_ context.Context, _ string) ([]*models.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

func setupTestTemplates(t *testing.T) string {
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")

	// Create directories
	dirs := []string{
		filepath.Join(viewsDir, "posts"),
		filepath.Join(viewsDir, "comments"),
		filepath.Join(viewsDir, "shared"),
		filepath.Join(viewsDir, "auth"),
		filepath.Join(viewsDir, "search"),
		filepath.Join(viewsDir, "pages"),
		filepath.Join(tmpDir, "static"),
	}
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	// Create template files
	templates := map[string]string{
		filepath.Join(viewsDir, "layout.html"):          `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		filepath.Join(viewsDir, "posts/index.html"):     `{{define "content"}}<div class="posts">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}</div>{{end}}`,
		filepath.Join(viewsDir, "posts/show.html"):      `{{define "content"}}<h1>{{.Post.Title}}</h1><p>{{.Post.Body}}</p>{{template "comments" .}}{{end}}`,
		filepath.Join(viewsDir, "posts/new.html"):       `{{define "content"}}<form method="POST"><input name="title"><textarea name="body"></textarea></form>{{end}}`,
		filepath.Join(viewsDir, "comments/list.html"):   `{{define "content"}}{{template "comments" .}}{{end}}`,
		filepath.Join(viewsDir, "shared/comments.html"): `{{define "comments"}}<div class="comments">{{range .Comments}}<img src="{{.AvatarURL}}"><p>{{.Content}}</p>{{end}}</div>{{end}}`,
		filepath.Join(viewsDir, "auth/register.html"):   `{{define "content"}}<form method="POST" action="/register">{{.Message}}<input name="name"><input name="email"><input name="password"></form>{{end}}`,
		filepath.Join(viewsDir, "auth/login.html"):      `{{define "content"}}<form method="POST" action="/login">{{.Message}}<input name="email"><input name="password"></form>{{end}}`,
		filepath.Join(viewsDir, "search/results.html"):  `{{define "content"}}{{with .Result}}<h1>{{.Query}}</h1>{{.FetchError}}{{range .Articles}}<h2>{{.Title}}</h2>{{end}}{{range .TopGlobal}}<li>{{.Term}} ({{.Count}})</li>{{end}}{{end}}{{end}}`,
		filepath.Join(viewsDir, "pages/about.html"):     `{{define "content"}}<h1>About</h1>{{end}}`,
		filepath.Join(viewsDir, "pages/contact.html"):   `{{define "content"}}<h1>Contact</h1>{{end}}`,
	}
	for path, content := range templates {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	// Create static test file
	cssContent := "body { background: #f0f0f0; }"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "static/style.css"), []byte(cssContent), 0644))

	return tmpDir
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T, fetcher services.ArticleFetcher) *mux.Router {
	basePath := setupTestTemplates(t)
	db := setupTestDB(t)
	sessions := services.NewSessionStore(time.Hour)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.ViewsDir = basePath
	cfg.StaticDir = filepath.Join(basePath, "static")

	return SetupRoutes(db, fetcher, sessions, cfg)
}

// registerUser signs a user up through the API and returns the session
// cookie. The first user registered on a router is the admin.
func registerUser(t *testing.T, router *mux.Router, name, email, password string) *http.Cookie {
	body, err := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("registration did not set a session cookie")
	return nil
}
