package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/cronscope/internal/config"
	"github.com/crucial707/cronscope/internal/handlers"
	"github.com/crucial707/cronscope/internal/middleware"
	"github.com/crucial707/cronscope/internal/presets"
)

// newRouter builds the API router. It is separate from main so tests can serve it with httptest.
func newRouter(cfg config.Config, list []presets.Preset) (http.Handler, error) {
	proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	cronHandler := handlers.NewCronHandler(list, cfg.DefaultOccurrences, cfg.MaxOccurrences)
	limiter := middleware.PerMinute(cfg.RateLimitPerMinute, cfg.RateLimitBurst).TrustProxies(proxies)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.IsProd(), ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/cron", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(middleware.MaxBytes(int64(cfg.MaxBodyBytes)))

		r.Get("/explain", cronHandler.Explain)
		r.Post("/explain", cronHandler.ExplainJSON)
		r.Get("/fields/{field}", cronHandler.GetField)
		r.Post("/fields", cronHandler.SetField)
		r.Get("/presets", cronHandler.ListPresets)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.JSONError(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	return r, nil
}
