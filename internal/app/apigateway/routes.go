package apigateway

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/commerce-gateway/internal/gateway/mware"
	"github.com/magabrotheeeer/commerce-gateway/internal/gateway/policy"
	"github.com/magabrotheeeer/commerce-gateway/internal/gateway/proxy"
)

// RegisterRoutes регистрирует маршруты шлюза. Все запросы, кроме /metrics,
// проходят цепочку проверок доступа и уходят в обратный прокси.
func RegisterRoutes(r chi.Router, logger *slog.Logger, checks []policy.Check, upstream *proxy.Proxy) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(mware.MetricsMiddleware())
	r.Use(mware.RateLimitMiddleware(logger, rate.NewLimiter(rate.Limit(100), 200)))

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(policy.Middleware(logger, checks...))
		r.Handle("/*", upstream)
	})
}
