package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/commerce-gateway/internal/models"
)

type OrderServiceMock struct {
	mock.Mock
}

func (m *OrderServiceMock) ListByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	userID := "c0a80101-0000-0000-0000-000000000001"
	orders := []models.Order{
		{
			OrderID:    "o-1",
			ProductID:  "p-1",
			Qty:        2,
			UnitPrice:  500,
			TotalPrice: 1000,
			UserID:     userID,
			CreatedAt:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			OrderID:    "o-2",
			ProductID:  "p-2",
			Qty:        1,
			UnitPrice:  300,
			TotalPrice: 300,
			UserID:     userID,
			CreatedAt:  time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC),
		},
	}

	tests := []struct {
		name           string
		userID         string
		mockOrders     []models.Order
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantCount      int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "two orders",
			userID:         userID,
			mockOrders:     orders,
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantCount:      2,
			wantStatus:     "OK",
		},
		{
			name:           "no orders yet",
			userID:         userID,
			mockOrders:     []models.Order{},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantCount:      0,
			wantStatus:     "OK",
		},
		{
			name:           "storage failure",
			userID:         userID,
			mockErr:        errors.New("connection refused"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "could not list orders",
			wantStatus:     "Error",
		},
		{
			name:           "missing userId in path",
			userID:         "",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "userId is required",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(OrderServiceMock)
			if tt.mockCalled {
				serviceMock.On("ListByUserID", mock.Anything, tt.userID).
					Return(tt.mockOrders, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/order-service/"+tt.userID+"/orders", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
				return
			}

			data, ok := got["data"].(map[string]any)
			assert.True(t, ok)
			gotOrders, ok := data["orders"].([]any)
			assert.True(t, ok, "orders must be present even when empty")
			assert.Len(t, gotOrders, tt.wantCount)

			serviceMock.AssertExpectations(t)
		})
	}
}
