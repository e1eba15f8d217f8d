package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchpad/internal/core/port"
	"launchpad/internal/metrics"
)

// CallerHeader carries the identity of the account making a request.
const CallerHeader = "X-Account"

// Handler exposes the launchpad engine over HTTP. Callers identify
// themselves with CallerHeader; read-only routes do not require it.
type Handler struct {
	svc    port.LaunchpadUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured, plus /metrics.
func NewHandler(svc port.LaunchpadUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.timed("create_campaign", h.handleCreateCampaign))
		r.Get("/campaigns/{saleAsset}", h.timed("get_campaign", h.handleGetCampaign))
		r.Post("/campaigns/{saleAsset}/purchase", h.timed("purchase", h.handlePurchase))
		r.Post("/campaigns/{saleAsset}/withdraw", h.timed("withdraw", h.handleWithdraw))
		r.Post("/assets/{asset}/approve", h.timed("approve", h.handleApprove))
		r.Get("/assets/{asset}/balances/{account}", h.timed("balance_of", h.handleBalanceOf))
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) timed(op string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
