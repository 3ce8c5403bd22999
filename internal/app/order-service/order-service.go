// Package orderservice собирает сервис заказов: хранилище, публикацию
// событий в брокер и бизнес-логику создания и чтения заказов.
package orderservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/commerce-gateway/internal/config"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/commerce-gateway/internal/migrations"
	ordersvc "github.com/magabrotheeeer/commerce-gateway/internal/services/order"
	"github.com/magabrotheeeer/commerce-gateway/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер сервиса заказов.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	broker *amqp.Connection
}

// New создает приложение сервиса заказов из конфигурации.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.Connection, cfg.RabbitMQ.Retries, cfg.RabbitMQ.Delay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(ch, rabbitmq.OrdersExchange)

	orders := ordersvc.NewOrderService(db, publisher, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, orders)

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
		broker: conn,
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
		_ = a.broker.Close()
		_ = a.db.DB.Close()
		return err
	}
}
