package orderservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/commerce-gateway/internal/http/handlers/order/create"
	"github.com/magabrotheeeer/commerce-gateway/internal/http/handlers/order/health"
	"github.com/magabrotheeeer/commerce-gateway/internal/http/handlers/order/list"
	ordersvc "github.com/magabrotheeeer/commerce-gateway/internal/services/order"
)

// RegisterRoutes регистрирует маршруты сервиса заказов.
func RegisterRoutes(r chi.Router, logger *slog.Logger, orders *ordersvc.OrderService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/order-service", func(r chi.Router) {
		r.Get("/health-check", health.New(logger).ServeHTTP)
		r.Post("/{userId}/orders", create.New(logger, orders).ServeHTTP)
		r.Get("/{userId}/orders", list.New(logger, orders).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
