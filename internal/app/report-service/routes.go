// Package reportservice собирает зависимости и маршруты сервиса отчетов.
package reportservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/magabrotheeeer/user-statistics/docs"
	"github.com/magabrotheeeer/user-statistics/internal/http/handlers/health"
	"github.com/magabrotheeeer/user-statistics/internal/http/handlers/report/poll"
	"github.com/magabrotheeeer/user-statistics/internal/http/handlers/report/submit"
	"github.com/magabrotheeeer/user-statistics/internal/http/middlewarectx"
	reportsvc "github.com/magabrotheeeer/user-statistics/internal/services/report"
)

// RegisterRoutes регистрирует все маршруты приложения.
// limiter == nil отключает ограничение частоты запросов.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *reportsvc.Service, limiter *rate.Limiter, deps map[string]health.Pinger) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware,
	)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
		r.Post("/report/user_statistics", submit.New(logger, service).ServeHTTP)
		r.Get("/report/info", poll.New(logger, service).ServeHTTP)
	})

	r.Get("/health", health.New(logger, deps).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
