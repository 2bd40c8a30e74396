package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
	"github.com/MikeSquared-Agency/Arbiter/internal/hermes"
	"github.com/MikeSquared-Agency/Arbiter/internal/metrics"
)

func NewRouter(e *ahp.Evaluator, h hermes.Client, rec *metrics.Recorder, adminToken string, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimit))

	evaluations := NewEvaluationsHandler(e, h, rec, logger)
	admin := NewAdminHandler(rec)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/evaluations", evaluations.Create)
		r.Post("/weights", evaluations.Weights)
		r.Get("/random-index", evaluations.RandomIndex)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
