package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
)

// PageHandler serves the static marketing pages and the contact form.
type PageHandler struct {
	publicDir string
}

func NewPageHandler(publicDir string) *PageHandler {
	return &PageHandler{publicDir: publicDir}
}

func (h *PageHandler) servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.publicDir, name))
	}
}

func (h *PageHandler) Home() http.HandlerFunc     { return h.servePage("index.html") }
func (h *PageHandler) About() http.HandlerFunc    { return h.servePage("about.html") }
func (h *PageHandler) Services() http.HandlerFunc { return h.servePage("services.html") }
func (h *PageHandler) Contact() http.HandlerFunc  { return h.servePage("contact.html") }

// SubmitContact echoes the submitted name back in a confirmation page.
// Nothing is persisted; the submission only goes to the log.
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequestResponse(w, err)
		return
	}

	name := r.PostFormValue("name")
	slog.Info("contact form submission",
		slog.String("name", name),
		slog.String("email", r.PostFormValue("email")),
	)

	RenderTemplate(w, http.StatusOK, "contact-thanks.html", map[string]interface{}{
		"Name": name,
	})
}
