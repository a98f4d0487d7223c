package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"andromeda-ads/internal/core/port"
	"andromeda-ads/internal/metrics"
)

// Services are the use cases the HTTP adapter drives.
type Services struct {
	Copy      port.CopyUseCase
	Catalog   port.CatalogUseCase
	Campaigns port.CampaignUseCase
	Optimizer port.OptimizerUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it reads vendor credentials from request headers, decodes the JSON
// body and maps use case errors to status codes. It holds no state between
// requests.
type Handler struct {
	svc     Services
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. requestTimeout
// bounds each API request including its vendor calls; zero disables it.
func NewHandler(svc Services, requestTimeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, metrics: m, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, h.observe)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}

		r.Route("/ai", func(r chi.Router) {
			r.Post("/briefing", h.handleBriefing)
			r.Post("/concepts", h.handleConcepts)
			r.Post("/chat", h.handleChat)
			r.Post("/creative", h.handleCreative)
			r.Post("/analysis", h.handleAnalysis)
		})

		r.Route("/shopify", func(r chi.Router) {
			r.Post("/products", h.handleProducts)
			r.Post("/product", h.handleProduct)
			r.Post("/brand", h.handleBrand)
		})

		r.Route("/platforms", func(r chi.Router) {
			r.Post("/meta/creatives", h.handleUploadCreative)
			r.Post("/meta/creatives/pending", h.handleUploadPending)
			r.Route("/{platform}", func(r chi.Router) {
				r.Post("/validate", h.handleValidate)
				r.Post("/campaigns", h.handleLaunch)
				r.Post("/rules", h.handleRules)
				r.Patch("/optimizations", h.handleApply)
			})
		})

		r.Get("/stats", h.handleStats)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
