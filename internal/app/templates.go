package app

import (
	"embed"
	"html/template"
)

// templateFS contains the HTML templates bundled with the binary.
//
//go:embed templates/*.gohtml
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("base").Funcs(template.FuncMap{
		"kindTitle": kindTitle,
	}).ParseFS(templateFS, "templates/*.gohtml")
}
