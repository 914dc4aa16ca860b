package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trackpit/internal/dashboard"
	"github.com/ukydev/trackpit/internal/middleware"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{
			"money": func(v float64) string { return fmt.Sprintf("RM %.2f", v) },
		}).
		ParseFS(templateFS, "templates/index.html"),
)

// DashboardHandler serves the aggregated service view
type DashboardHandler struct {
	builder *dashboard.Builder
	tmpl    *template.Template
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(builder *dashboard.Builder) *DashboardHandler {
	return &DashboardHandler{builder: builder, tmpl: indexTemplate}
}

// Index renders every service as an HTML page
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	services, err := h.builder.Build(r.Context())
	if err != nil {
		log.WithError(err).WithField("request_id", middleware.GetRequestID(r.Context())).Error("Failed to build dashboard")
		http.Error(w, "Failed to load services", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, map[string]interface{}{"services": services}); err != nil {
		log.WithError(err).Error("Failed to render dashboard")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("Failed to write response")
	}
}

// Services returns the same records as JSON
func (h *DashboardHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.builder.Build(r.Context())
	if err != nil {
		log.WithError(err).WithField("request_id", middleware.GetRequestID(r.Context())).Error("Failed to build dashboard")
		writeStatus(w, http.StatusInternalServerError, "Failed to load services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// Health reports liveness
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
