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

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	templates      map[string]*template.Template
}

// SetService sets the comment service for testing
func (cc *CommentController) SetService(service *services.CommentService) {
	cc.commentService = service
}

// NewCommentController creates a new CommentController backed by db
func NewCommentController(db *badger.DB, basePath string) *CommentController {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	commentService := services.NewCommentService(commentRepo, postRepo)

	return &CommentController{
		commentService: commentService,
		templates:      loadCommentTemplates(basePath),
	}
}

// loadCommentTemplates loads and parses all comment-related templates
func loadCommentTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["list"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/comments/list.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	return templates
}

// Index handles listing all comments for a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		sendError(w, r, "Failed to fetch comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, comments)
	} else {
		user, _ := middleware.UserFrom(r.Context())
		data := struct {
			CurrentUser *models.User
			PostID      int
			Comments    []*models.Comment
		}{
			CurrentUser: user,
			PostID:      postID,
			Comments:    comments,
		}

		if err := cc.templates["list"].ExecuteTemplate(w, "layout", data); err != nil {
			sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

// Create handles creating a new comment. Anonymous attempts never
// reach this handler (RequireAuth), but the session user is checked
// again so nothing persists without an author.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, r, "Authentication required", http.StatusUnauthorized)
		return
	}

	var comment models.Comment
	if isAPIRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		comment.Content = r.FormValue("content")
	}
	comment.PostID = postID
	comment.AuthorID = user.ID
	comment.AuthorName = user.Name
	comment.AvatarURL = user.AvatarURL()

	if err := cc.commentService.CreateComment(&comment); err != nil {
		sendError(w, r, "Failed to create comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Respond based on request type
	if isAPIRequest(r) {
		sendJSON(w, comment)
	} else {
		http.Redirect(w, r, "/posts/"+strconv.Itoa(postID), http.StatusSeeOther)
	}
}

// Edit handles editing an existing comment
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	if !cc.authorizeChange(w, r, id) {
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	comment.ID = id

	if err := cc.commentService.UpdateComment(&comment); err != nil {
		sendError(w, r, "Failed to update comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, comment)
}

// authorizeChange verifies the session user may modify comment id.
// Only the comment's author or an admin may edit or delete it.
func (cc *CommentController) authorizeChange(w http.ResponseWriter, r *http.Request, id int) bool {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		sendError(w, r, "Authentication required", http.StatusUnauthorized)
		return false
	}

	existing, err := cc.commentService.GetComment(id)
	if err == repositories.ErrNotFound {
		sendError(w, r, "Comment not found", http.StatusNotFound)
		return false
	}
	if err != nil {
		sendError(w, r, "Failed to fetch comment: "+err.Error(), http.StatusInternalServerError)
		return false
	}

	if existing.AuthorID != user.ID && !user.Admin {
		sendError(w, r, "You can only modify your own comments", http.StatusForbidden)
		return false
	}
	return true
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		sendError(w, r, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	if !cc.authorizeChange(w, r, id) {
		return
	}

	if err := cc.commentService.DeleteComment(id); err != nil {
		sendError(w, r, "Failed to delete comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
