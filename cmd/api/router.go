package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bestbuycongo/starlink-inquiry/internal/config"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/http/handlers"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/http/middleware"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/http/views"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

type routerDeps struct {
	UseCase *usecase.SubmitInquiryUseCase
	Limiter *handlers.RateLimiter
	Health  *handlers.HealthHandler
}

func newRouter(cfg *config.Config, deps routerDeps) (http.Handler, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	inquiryHandler, err := handlers.NewInquiryHandler(deps.UseCase)
	if err != nil {
		return nil, err
	}
	pageHandler := handlers.NewPageHandler(deps.UseCase, renderer)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.App.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         cfg.CORS.MaxAge,
	}))

	r.Get("/", pageHandler.Show)
	r.Handle("/static/*", views.Static())
	r.With(deps.Limiter.Middleware).Post("/inquiry", pageHandler.Submit)

	r.Route("/api/inquiries", func(r chi.Router) {
		r.Get("/schema", inquiryHandler.Schema)
		r.With(deps.Limiter.Middleware).Post("/", inquiryHandler.Create)
	})

	r.Get("/health", deps.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}
