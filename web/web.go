// Package web holds the HTML templates and static assets served by the blog pages.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var functions = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// Templates parses every page template. Pages are addressed by file name, e.g. "posts.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(functions).ParseFS(templateFS, "templates/*.html")
}

// Static is the asset tree mounted under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
