package routes

import (
	"net/http"

	"pressroom/app/config"
	"pressroom/app/controllers"
	"pressroom/app/middleware"
	"pressroom/app/repositories"
	"pressroom/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
// cfg.ViewsDir locates app/views; cfg.StaticDir is served under
// /static/.
func SetupRoutes(db *badger.DB, fetcher services.ArticleFetcher, sessions *services.SessionStore, cfg config.Config) *mux.Router {
	router := mux.NewRouter()

	userRepo := repositories.NewBadgerUserRepository(db)
	auth := middleware.NewAuth(sessions, userRepo)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(auth.CurrentUser)

	basePath := cfg.ViewsDir
	postController := controllers.NewPostController(db, basePath, cfg.PostsPerPage)
	commentController := controllers.NewCommentController(db, basePath)
	authController := controllers.NewAuthController(db, sessions, basePath)
	searchController := controllers.NewSearchController(db, fetcher, basePath)
	pagesController := controllers.NewPagesController(basePath)

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Web routes
	router.HandleFunc("/", postController.Index).Methods("GET")

	// Auth web endpoints
	router.HandleFunc("/register", authController.RegisterForm).Methods("GET")
	router.HandleFunc("/register", authController.Register).Methods("POST")
	router.HandleFunc("/login", authController.LoginForm).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	// Search and static pages
	router.HandleFunc("/search", searchController.Search).Methods("GET")
	router.HandleFunc("/about", pagesController.About).Methods("GET")
	router.HandleFunc("/contact", pagesController.Contact).Methods("GET")

	// Posts web endpoints; authoring is admin-only
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.Handle("/new", auth.RequireAdmin(http.HandlerFunc(postController.New))).Methods("GET")
	posts.Handle("", auth.RequireAdmin(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.Handle("/{id:[0-9]+}/edit", auth.RequireAdmin(http.HandlerFunc(postController.EditForm))).Methods("GET")
	posts.Handle("/{id:[0-9]+}", auth.RequireAdmin(http.HandlerFunc(postController.Edit))).Methods("PUT", "POST")
	posts.Handle("/{id:[0-9]+}", auth.RequireAdmin(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	posts.Handle("/{id:[0-9]+}/delete", auth.RequireAdmin(http.HandlerFunc(postController.Delete))).Methods("POST")

	// Comments web endpoints; commenting requires login
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	posts.Handle("/{postId:[0-9]+}/comments", auth.RequireAuth(http.HandlerFunc(commentController.Create))).Methods("POST")
	router.Handle("/comments/{id:[0-9]+}", auth.RequireAuth(http.HandlerFunc(commentController.Edit))).Methods("PUT")
	router.Handle("/comments/{id:[0-9]+}", auth.RequireAuth(http.HandlerFunc(commentController.Delete))).Methods("DELETE")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Auth API endpoints
	api.HandleFunc("/register", authController.Register).Methods("POST")
	api.HandleFunc("/login", authController.Login).Methods("POST")
	api.HandleFunc("/logout", authController.Logout).Methods("POST")

	// Search API endpoints
	api.HandleFunc("/search", searchController.Search).Methods("GET")
	api.HandleFunc("/top-searches", searchController.TopSearches).Methods("GET")

	// Posts API endpoints
	apiPosts := api.PathPrefix("/posts").Subrouter()
	apiPosts.HandleFunc("", postController.Index).Methods("GET")
	apiPosts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	apiPosts.Handle("", auth.RequireAdmin(http.HandlerFunc(postController.Create))).Methods("POST")
	apiPosts.Handle("/{id:[0-9]+}", auth.RequireAdmin(http.HandlerFunc(postController.Edit))).Methods("PUT")
	apiPosts.Handle("/{id:[0-9]+}", auth.RequireAdmin(http.HandlerFunc(postController.Delete))).Methods("DELETE")

	// Comments API endpoints
	apiPosts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	apiPosts.Handle("/{postId:[0-9]+}/comments", auth.RequireAuth(http.HandlerFunc(commentController.Create))).Methods("POST")
	api.Handle("/comments/{id:[0-9]+}", auth.RequireAuth(http.HandlerFunc(commentController.Edit))).Methods("PUT")
	api.Handle("/comments/{id:[0-9]+}", auth.RequireAuth(http.HandlerFunc(commentController.Delete))).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
