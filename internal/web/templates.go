// Package web renders the HTML pages served alongside the JSON API.
package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/nemoai/user-data-api/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// NotFoundPage is the HTML body returned for an unknown user when the client
// asked for HTML.
const NotFoundPage = "<h1>User Not Found</h1><p>The requested user does not exist.</p>"

// RenderIndex renders the API documentation homepage.
func RenderIndex() (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "index.html", nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderUserProfile renders the HTML profile page for a user.
func RenderUserProfile(u models.User) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "user_profile.html", u); err != nil {
		return "", err
	}
	return b.String(), nil
}
