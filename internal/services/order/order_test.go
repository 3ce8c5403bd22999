package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/commerce-gateway/internal/models"
)

type OrderRepositoryMock struct {
	mock.Mock
}

func (m *OrderRepositoryMock) SaveOrder(ctx context.Context, order models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepositoryMock) ListOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

type EventPublisherMock struct {
	mock.Mock
}

func (m *EventPublisherMock) Publish(routingKey string, message any) error {
	args := m.Called(routingKey, message)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreate(t *testing.T) {
	repo := new(OrderRepositoryMock)
	events := new(EventPublisherMock)
	service := NewOrderService(repo, events, newNoopLogger())

	repo.On("SaveOrder", mock.Anything, mock.AnythingOfType("models.Order")).Return(nil).Once()
	events.On("Publish", "order.created", mock.AnythingOfType("models.OrderCreatedEvent")).Return(nil).Once()

	order, err := service.Create(context.Background(), "u1", models.DummyOrder{
		ProductID: "p1",
		Qty:       3,
		UnitPrice: 1000,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, int64(3000), order.TotalPrice)
	assert.Equal(t, "u1", order.UserID)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreate_DistinctOrderIDs(t *testing.T) {
	repo := new(OrderRepositoryMock)
	events := new(EventPublisherMock)
	service := NewOrderService(repo, events, newNoopLogger())

	repo.On("SaveOrder", mock.Anything, mock.AnythingOfType("models.Order")).Return(nil)
	events.On("Publish", "order.created", mock.Anything).Return(nil)

	seen := make(map[string]bool)
	for range 100 {
		order, err := service.Create(context.Background(), "u1", models.DummyOrder{
			ProductID: "p1",
			Qty:       1,
			UnitPrice: 1,
		})
		require.NoError(t, err)
		require.False(t, seen[order.OrderID])
		seen[order.OrderID] = true
	}
}

func TestCreate_Overflow(t *testing.T) {
	repo := new(OrderRepositoryMock)
	events := new(EventPublisherMock)
	service := NewOrderService(repo, events, newNoopLogger())

	_, err := service.Create(context.Background(), "u1", models.DummyOrder{
		ProductID: "p1",
		Qty:       math.MaxInt64,
		UnitPrice: 2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPriceOverflow)

	repo.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestCreate_SaveError(t *testing.T) {
	repo := new(OrderRepositoryMock)
	events := new(EventPublisherMock)
	service := NewOrderService(repo, events, newNoopLogger())

	repo.On("SaveOrder", mock.Anything, mock.AnythingOfType("models.Order")).
		Return(errors.New("duplicate order_id")).Once()

	_, err := service.Create(context.Background(), "u1", models.DummyOrder{
		ProductID: "p1",
		Qty:       1,
		UnitPrice: 100,
	})
	require.Error(t, err)

	// при ошибке сохранения событие не публикуется
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreate_PublishFailureNonFatal(t *testing.T) {
	repo := new(OrderRepositoryMock)
	events := new(EventPublisherMock)
	service := NewOrderService(repo, events, newNoopLogger())

	repo.On("SaveOrder", mock.Anything, mock.AnythingOfType("models.Order")).Return(nil).Once()
	events.On("Publish", "order.created", mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	order, err := service.Create(context.Background(), "u1", models.DummyOrder{
		ProductID: "p1",
		Qty:       2,
		UnitPrice: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.TotalPrice)
}

func TestListByUserID_EmptyIsNotNil(t *testing.T) {
	repo := new(OrderRepositoryMock)
	events := new(EventPublisherMock)
	service := NewOrderService(repo, events, newNoopLogger())

	repo.On("ListOrdersByUserID", mock.Anything, "u1").Return(nil, nil).Once()

	got, err := service.ListByUserID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		qty       int64
		unitPrice int64
		want      int64
		wantErr   error
	}{
		{name: "simple", qty: 3, unitPrice: 1000, want: 3000},
		{name: "max representable", qty: 1, unitPrice: math.MaxInt64, want: math.MaxInt64},
		{name: "overflow", qty: math.MaxInt64, unitPrice: 2, wantErr: ErrPriceOverflow},
		{name: "zero qty", qty: 0, unitPrice: 10, wantErr: ErrInvalidAmount},
		{name: "negative price", qty: 1, unitPrice: -5, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := totalPrice(tt.qty, tt.unitPrice)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
