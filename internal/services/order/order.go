// Package services содержит логику создания и чтения заказов.
package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/commerce-gateway/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/commerce-gateway/internal/models"
)

var (
	// ErrInvalidAmount возвращается для неположительного количества или цены.
	ErrInvalidAmount = errors.New("quantity and unit price must be positive")
	// ErrPriceOverflow возвращается, когда итоговая цена не помещается в int64.
	ErrPriceOverflow = errors.New("total price overflows")
)

// OrderRepository описывает контракт для работы с заказами в базе данных.
type OrderRepository interface {
	// SaveOrder сохраняет новый заказ.
	SaveOrder(ctx context.Context, order models.Order) error
	// ListOrdersByUserID возвращает все заказы пользователя.
	ListOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error)
}

// EventPublisher публикует доменные события в брокер сообщений.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// OrderService реализует создание и чтение заказов.
type OrderService struct {
	repo   OrderRepository
	events EventPublisher
	log    *slog.Logger
}

// NewOrderService создает новый экземпляр OrderService.
func NewOrderService(repo OrderRepository, events EventPublisher, log *slog.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// Create создает заказ: генерирует уникальный идентификатор, вычисляет
// итоговую цену и сохраняет запись. Ошибка сохранения фатальна для запроса;
// ошибка публикации события — нет.
func (s *OrderService) Create(ctx context.Context, userID string, req models.DummyOrder) (*models.Order, error) {
	total, err := totalPrice(req.Qty, req.UnitPrice)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		OrderID:    uuid.New().String(),
		ProductID:  req.ProductID,
		Qty:        req.Qty,
		UnitPrice:  req.UnitPrice,
		TotalPrice: total,
		UserID:     userID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("created new order",
		slog.String("order_id", order.OrderID),
		slog.String("user_id", userID))

	event := models.OrderCreatedEvent{
		OrderID:    order.OrderID,
		UserID:     order.UserID,
		ProductID:  order.ProductID,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}
	if err := s.events.Publish(rabbitmq.OrderCreatedQueue, event); err != nil {
		s.log.Warn("failed to publish order created event",
			slog.String("order_id", order.OrderID), sl.Err(err))
	}

	return &order, nil
}

// ListByUserID возвращает все заказы пользователя. Список всегда не nil.
func (s *OrderService) ListByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	result, err := s.repo.ListOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []models.Order{}
	}
	return result, nil
}

// totalPrice вычисляет qty * unitPrice с контролем переполнения int64.
func totalPrice(qty, unitPrice int64) (int64, error) {
	if qty <= 0 || unitPrice <= 0 {
		return 0, ErrInvalidAmount
	}
	if qty > math.MaxInt64/unitPrice {
		return 0, ErrPriceOverflow
	}
	return qty * unitPrice, nil
}
