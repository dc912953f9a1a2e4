package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/wifi-on-ice/dashboard/dashboard"
	"github.com/wifi-on-ice/dashboard/models"
)

// PageData is the template context of the dashboard page
type PageData struct {
	Title         string
	Header        string
	DefaultRoutes []string
	LayerNames    []string
	Tiers         []models.RateTier
	View          models.ViewState
}

// PageHandler renders the single-page dashboard
type PageHandler struct {
	tmpl *template.Template
}

// NewPageHandler creates a page handler from parsed templates
func NewPageHandler(tmpl *template.Template) *PageHandler {
	return &PageHandler{tmpl: tmpl}
}

// GetIndex handles GET /
func (h *PageHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Title:         "🚆 WIFI on ICE",
		Header:        "Making the most of your journey utilizing onboard Wi-Fi",
		DefaultRoutes: dashboard.DefaultRoutes(),
		LayerNames:    models.LayerNames(),
		Tiers:         models.RateTiers(),
		View:          dashboard.InitialViewState(),
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		log.Printf("Warning: failed to render index page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
