// Package pledge собирает HTTP-приложение сервиса настройки пакетов.
package pledge

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/health"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/packages/customize"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/packages/invalidate"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/packages/list"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/packages/quote"
	packageread "github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/packages/read"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/pledges/create"
	pledgeread "github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/pledges/read"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/middlewarectx"
	pledgeservice "github.com/magabrotheeeer/pledge-customizer/internal/services/pledge"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *pledgeservice.Service,
	checker health.Checker, limiter *rate.Limiter, gatherer prometheus.Gatherer) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	r.Get("/health", health.New(logger, checker).ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

		r.Get("/packages", list.New(logger, service).ServeHTTP)
		r.Get("/packages/{name}", packageread.New(logger, service).ServeHTTP)
		r.Post("/packages/{name}/quote", quote.New(logger, service).ServeHTTP)
		r.Post("/packages/{name}/customize", customize.New(logger, service).ServeHTTP)
		r.Delete("/packages/{name}/cache", invalidate.New(logger, service).ServeHTTP)

		r.Post("/pledges", create.New(logger, service).ServeHTTP)
		r.Get("/pledges/{id}", pledgeread.New(logger, service).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// NewRouter создаёт роутер с зарегистрированными маршрутами.
func NewRouter(logger *slog.Logger, service *pledgeservice.Service, checker health.Checker,
	limiter *rate.Limiter, gatherer prometheus.Gatherer) http.Handler {
	router := chi.NewRouter()
	RegisterRoutes(router, logger, service, checker, limiter, gatherer)
	return router
}
