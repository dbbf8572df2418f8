// Package web holds the embedded HTML pages and their static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"isSuperuser": func(role string) bool { return role == "superuser" },
	}).ParseFS(templateFS, "templates/*.html")
}

// Static serves the embedded assets under their file names.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
