package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every portal template receives.
type Page struct {
	Title   string
	Portal  string
	Notice  string
	IsError bool
	View    interface{}
}

// LoadTemplates parses the embedded portal templates for gin's HTML renderer.
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
