package handlers

import (
	"net/http"

	"github.com/ukydev/trackpit/internal/dashboard"
	"github.com/ukydev/trackpit/internal/db"
	"github.com/ukydev/trackpit/internal/events"
	"github.com/ukydev/trackpit/internal/middleware"
	"github.com/ukydev/trackpit/internal/models"
)

// RouterConfig holds the dependencies of the HTTP surface. Auth and
// RateLimit are optional.
type RouterConfig struct {
	Store     db.WorkshopStore
	Publisher events.Publisher
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

// NewRouter wires every dashboard route
func NewRouter(cfg RouterConfig) http.Handler {
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	dashboardHandler := NewDashboardHandler(dashboard.NewBuilder(cfg.Store))
	timelineHandler := NewTimelineHandler(cfg.Store, publisher)
	invoiceHandler := NewInvoiceHandler(cfg.Store, publisher)

	limit := func(h http.Handler) http.Handler {
		if cfg.RateLimit == nil {
			return h
		}
		return cfg.RateLimit.Limit(h)
	}
	allow := cfg.Auth.RequirePermission

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", allow(models.ActionViewServices)(http.HandlerFunc(dashboardHandler.Index)))
	mux.Handle("GET /api/services", allow(models.ActionViewServices)(http.HandlerFunc(dashboardHandler.Services)))
	mux.HandleFunc("GET /health", dashboardHandler.Health)
	mux.Handle("POST /update/{uid}/{serviceId}/{statusId}",
		limit(allow(models.ActionUpdateTimeline)(http.HandlerFunc(timelineHandler.Update))))
	mux.Handle("POST /invoice/{uid}/{serviceId}",
		limit(allow(models.ActionCreateInvoice)(http.HandlerFunc(invoiceHandler.Create))))

	return middleware.RequestLogger(cfg.Auth.Authenticate(mux))
}
