// Package userservice собирает сервис пользователей: хранилище, кэш,
// клиент сервиса заказов, бизнес-логику аутентификации и агрегации профиля.
package userservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/commerce-gateway/internal/cache"
	ordersclient "github.com/magabrotheeeer/commerce-gateway/internal/clients/orders"
	"github.com/magabrotheeeer/commerce-gateway/internal/config"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/jwt"
	"github.com/magabrotheeeer/commerce-gateway/internal/migrations"
	authservice "github.com/magabrotheeeer/commerce-gateway/internal/services/auth"
	profileservice "github.com/magabrotheeeer/commerce-gateway/internal/services/user"
	"github.com/magabrotheeeer/commerce-gateway/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер сервиса пользователей.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New создает приложение сервиса пользователей из конфигурации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	orders := ordersclient.NewClient(cfg.OrderClient)

	auth := authservice.NewAuthService(db, jwtMaker, logger)
	profile := profileservice.NewUserService(db, orders, cacheRedis, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, auth, profile)

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
		db:     db,
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
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
