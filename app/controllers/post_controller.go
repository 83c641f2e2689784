package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"pressroom/app/middleware"
	"pressroom/app/models"
	"pressroom/app/repositories"
	"pressroom/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	templates   map[string]*template.Template
	perPage     int
}

// SetService sets the post service for testing
func (pc *PostController) SetService(service *services.PostService) {
	pc.postService = service
}

// NewPostController creates a new PostController backed by db.
// basePath locates the app/views directory; empty means the working
// directory. perPage is the default page size for listings.
func NewPostController(db *badger.DB, basePath string, perPage int) *PostController {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	postService := services.NewPostService(postRepo, commentRepo)

	if perPage < 1 {
		perPage = 10
	}
	return &PostController{
		postService: postService,
		templates:   loadPostTemplates(basePath),
		perPage:     perPage,
	}
}

// loadPostTemplates loads and parses all post-related templates
func loadPostTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/index.html"),
	))
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/show.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	templates["new"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/new.html"),
	))
	return templates
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	data := struct {
		CurrentUser *models.User
		Post        *models.Post
		IsEdit      bool
	}{
		CurrentUser: user,
	}
	if err := pc.templates["new"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// EditForm displays the form for editing an existing post, prefilled
func (pc *PostController) EditForm(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}

	user, _ := middleware.UserFrom(r.Context())
	data := struct {
		CurrentUser *models.User
		Post        *models.Post
		IsEdit      bool
	}{
		CurrentUser: user,
		Post:        post,
		IsEdit:      true,
	}
	if err := pc.templates["new"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	// Parse page parameter
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	// Parse per_page parameter
	perPage := pc.perPage
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}

	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		sendError(w, r, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, map[string]interface{}{
			"posts": posts,
			"page":  page,
		})
	} else {
		user, _ := middleware.UserFrom(r.Context())
		data := struct {
			CurrentUser *models.User
			Posts       []*models.Post
			Page        int
		}{
			CurrentUser: user,
			Posts:       posts,
			Page:        page,
		}

		if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
			sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, post)
	} else {
		user, _ := middleware.UserFrom(r.Context())
		data := struct {
			CurrentUser *models.User
			Post        *models.Post
			Comments    []*models.Comment
		}{
			CurrentUser: user,
			Post:        post,
			Comments:    post.Comments,
		}

		if err := pc.templates["show"].ExecuteTemplate(w, "layout", data); err != nil {
			sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

// Create handles creating a new post. The author is the session user.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, r, "Authentication required", http.StatusUnauthorized)
		return
	}

	// Parse form or JSON depending on request type
	var post models.Post
	if isAPIRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		post.Title = r.FormValue("title")
		post.Subtitle = r.FormValue("subtitle")
		post.Body = r.FormValue("body")
		post.ImageURL = r.FormValue("image_url")
	}
	post.AuthorID = user.ID
	post.AuthorName = user.Name

	if err := pc.postService.CreatePost(&post); err != nil {
		sendError(w, r, "Failed to create post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Respond based on request type
	if isAPIRequest(r) {
		sendJSON(w, post)
	} else {
		http.Redirect(w, r, "/posts/"+strconv.Itoa(post.ID), http.StatusSeeOther)
	}
}

// Edit handles updating an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var post models.Post
	if isAPIRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		post.Title = r.FormValue("title")
		post.Subtitle = r.FormValue("subtitle")
		post.Body = r.FormValue("body")
		post.ImageURL = r.FormValue("image_url")
	}
	post.ID = id

	if err := pc.postService.UpdatePost(&post); err != nil {
		sendError(w, r, "Failed to update post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, post)
	} else {
		http.Redirect(w, r, "/posts/"+strconv.Itoa(post.ID), http.StatusSeeOther)
	}
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		sendError(w, r, "Failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		w.WriteHeader(http.StatusNoContent)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
