package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pressroom/app/models"
	"pressroom/app/repositories"
	"pressroom/app/services"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "pressroom_session"

type contextKey string

const userContextKey contextKey = "current_user"

// Auth resolves session cookies to users and gates protected routes
type Auth struct {
	sessions *services.SessionStore
	users    repositories.UserRepository
}

// NewAuth creates the auth middleware
func NewAuth(sessions *services.SessionStore, users repositories.UserRepository) *Auth {
	return &Auth{
		sessions: sessions,
		users:    users,
	}
}

// CurrentUser resolves the session cookie to a user and stores it on
// the request context. Requests without a valid session pass through
// as anonymous.
func (a *Auth) CurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err == nil {
			if userID, ok := a.sessions.Get(cookie.Value); ok {
				if user, err := a.users.GetByID(userID); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects anonymous requests: web requests redirect to the
// login page, API requests get a 401.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			if strings.HasPrefix(r.URL.Path, "/api") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests from non-admin users
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := UserFrom(r.Context())
		if !user.Admin {
			if strings.HasPrefix(r.URL.Path, "/api") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "admin access required"})
				return
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// UserFrom returns the authenticated user stored on the context, if any
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// WithUser stores a user on the context. Exposed for handler tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
