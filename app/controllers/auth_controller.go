package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"

	"pressroom/app/middleware"
	"pressroom/app/models"
	"pressroom/app/repositories"
	"pressroom/app/services"

	"github.com/dgraph-io/badger/v4"
)

// AuthController handles registration, login, and logout
type AuthController struct {
	authService *services.AuthService
	sessions    *services.SessionStore
	templates   map[string]*template.Template
}

// SetService sets the auth service for testing
func (ac *AuthController) SetService(service *services.AuthService) {
	ac.authService = service
}

// NewAuthController creates a new AuthController backed by db
func NewAuthController(db *badger.DB, sessions *services.SessionStore, basePath string) *AuthController {
	userRepo := repositories.NewBadgerUserRepository(db)
	authService := services.NewAuthService(userRepo)

	return &AuthController{
		authService: authService,
		sessions:    sessions,
		templates:   loadAuthTemplates(basePath),
	}
}

// loadAuthTemplates loads and parses all auth-related templates
func loadAuthTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["register"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/auth/register.html"),
	))
	templates["login"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/auth/login.html"),
	))
	return templates
}

type authForm struct {
	CurrentUser *models.User
	Message     string
}

// RegisterForm displays the registration form
func (ac *AuthController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	ac.renderForm(w, r, "register", "")
}

// Register handles creating a new account. A duplicate email is
// reported back to the form; API requests get a 409.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var name, email, password string
	if isAPIRequest(r) {
		var body struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		name, email, password = body.Name, body.Email, body.Password
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		name = r.FormValue("name")
		email = r.FormValue("email")
		password = r.FormValue("password")
	}

	user, err := ac.authService.Register(name, email, password)
	if err == repositories.ErrDuplicateEmail {
		if isAPIRequest(r) {
			sendError(w, r, err.Error(), http.StatusConflict)
		} else {
			ac.renderForm(w, r, "login", "You've already signed up with that email, login instead")
		}
		return
	}
	if err != nil {
		if isAPIRequest(r) {
			sendError(w, r, err.Error(), http.StatusBadRequest)
		} else {
			ac.renderForm(w, r, "register", err.Error())
		}
		return
	}

	if err := ac.startSession(w, user.ID); err != nil {
		sendError(w, r, "Failed to start session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, user)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// LoginForm displays the login form
func (ac *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	ac.renderForm(w, r, "login", "")
}

// Login handles authenticating a user
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var email, password string
	if isAPIRequest(r) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		email, password = body.Email, body.Password
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		email = r.FormValue("email")
		password = r.FormValue("password")
	}

	user, err := ac.authService.Authenticate(email, password)
	if err == services.ErrInvalidCredentials {
		if isAPIRequest(r) {
			sendError(w, r, err.Error(), http.StatusUnauthorized)
		} else {
			ac.renderForm(w, r, "login", "Invalid email or password, please try again")
		}
		return
	}
	if err != nil {
		sendError(w, r, "Login failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := ac.startSession(w, user.ID); err != nil {
		sendError(w, r, "Failed to start session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, user)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout ends the current session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		ac.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if isAPIRequest(r) {
		w.WriteHeader(http.StatusNoContent)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (ac *AuthController) startSession(w http.ResponseWriter, userID int) error {
	token, err := ac.sessions.Create(userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (ac *AuthController) renderForm(w http.ResponseWriter, r *http.Request, name, message string) {
	user, _ := middleware.UserFrom(r.Context())
	data := authForm{CurrentUser: user, Message: message}
	if err := ac.templates[name].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
