package userservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/commerce-gateway/internal/http/handlers/user/health"
	"github.com/magabrotheeeer/commerce-gateway/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/commerce-gateway/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/commerce-gateway/internal/http/handlers/user/register"
	authservice "github.com/magabrotheeeer/commerce-gateway/internal/services/auth"
	profileservice "github.com/magabrotheeeer/commerce-gateway/internal/services/user"
)

// RegisterRoutes регистрирует маршруты сервиса пользователей.
// Проверка токенов выполняется на шлюзе, сервис принимает уже
// авторизованные запросы.
func RegisterRoutes(r chi.Router, logger *slog.Logger, auth *authservice.AuthService, profileSvc *profileservice.UserService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/user-service", func(r chi.Router) {
		r.Get("/health-check", health.New(logger).ServeHTTP)
		r.Post("/users", register.New(logger, auth).ServeHTTP)
		r.Post("/login", login.New(logger, auth).ServeHTTP)
		r.Get("/users/{userId}", profile.New(logger, profileSvc).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
