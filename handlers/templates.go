package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
)

// templates holds all parsed page templates, keyed by file name, each
// paired with the shared layout.
var templates map[string]*template.Template

// LoadTemplates parses every page template in dir against layout.html.
// It must be called once at startup before any handler renders.
func LoadTemplates(dir string) error {
	layout := filepath.Join(dir, "layout.html")

	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return fmt.Errorf("failed to glob templates in %s: %w", dir, err)
	}

	parsed := make(map[string]*template.Template)
	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		tmpl, err := template.ParseFiles(layout, page)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		parsed[name] = tmpl
	}

	if len(parsed) == 0 {
		return fmt.Errorf("no page templates found in %s", dir)
	}

	templates = parsed
	return nil
}

// RenderTemplate executes the named page template with the layout.
func RenderTemplate(w http.ResponseWriter, status int, name string, data interface{}) {
	tmpl, ok := templates[name]
	if !ok {
		slog.Error("template not found", slog.String("template", name))
		http.Error(w, "the server encountered a problem and could not process your request", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", slog.String("template", name), slog.Any("error", err))
	}
}
