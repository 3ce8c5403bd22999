// Package apigateway собирает пограничный шлюз: цепочку проверок доступа,
// обратный прокси к внутренним сервисам и HTTP-сервер с graceful shutdown.
package apigateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/commerce-gateway/internal/config"
	"github.com/magabrotheeeer/commerce-gateway/internal/gateway/policy"
	"github.com/magabrotheeeer/commerce-gateway/internal/gateway/proxy"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/jwt"
)

// App инкапсулирует HTTP-сервер шлюза.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New создает приложение шлюза из конфигурации.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	checks := []policy.Check{
		policy.ExemptPaths(cfg.Gateway.ExemptPrefixes),
		policy.AllowList(cfg.Gateway.AllowList),
		policy.BearerToken(jwtMaker),
	}

	upstream, err := proxy.New(logger, cfg.Gateway.Routes)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	RegisterRoutes(router, logger, checks, upstream)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает сервер и блокируется до остановки контекста или ошибки.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
