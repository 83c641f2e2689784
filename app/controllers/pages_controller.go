package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"pressroom/app/middleware"
	"pressroom/app/models"
)

// PagesController serves the static about and contact pages
type PagesController struct {
	templates map[string]*template.Template
}

// NewPagesController creates a new PagesController
func NewPagesController(basePath string) *PagesController {
	templates := make(map[string]*template.Template)
	templates["about"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/pages/about.html"),
	))
	templates["contact"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/pages/contact.html"),
	))
	return &PagesController{templates: templates}
}

// About renders the about page
func (p *PagesController) About(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "about")
}

// Contact renders the contact page
func (p *PagesController) Contact(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "contact")
}

func (p *PagesController) render(w http.ResponseWriter, r *http.Request, name string) {
	user, _ := middleware.UserFrom(r.Context())
	data := struct {
		CurrentUser *models.User
	}{CurrentUser: user}
	if err := p.templates[name].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
