package profile

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
	userservice "github.com/magabrotheeeer/commerce-gateway/internal/services/user"
)

type ProfileServiceMock struct {
	mock.Mock
}

func (m *ProfileServiceMock) GetUserWithOrders(ctx context.Context, userID string) (*models.UserWithOrders, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*models.UserWithOrders)
	return profile, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestProfileHandler_ServeHTTP(t *testing.T) {
	userID := "c0a80101-0000-0000-0000-000000000001"
	user := models.User{
		UserID: userID,
		Email:  "user@example.com",
		Name:   "Alice",
	}
	order := models.Order{
		OrderID:    "o-1",
		ProductID:  "p-1",
		Qty:        2,
		UnitPrice:  500,
		TotalPrice: 1000,
		UserID:     userID,
		CreatedAt:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		userID         string
		mockProfile    *models.UserWithOrders
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantOrders     int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "profile with orders",
			userID:         userID,
			mockProfile:    &models.UserWithOrders{User: user, Orders: []models.Order{order}},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantOrders:     1,
			wantStatus:     "OK",
		},
		{
			name:           "profile with empty orders after downstream degradation",
			userID:         userID,
			mockProfile:    &models.UserWithOrders{User: user, Orders: []models.Order{}},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantOrders:     0,
			wantStatus:     "OK",
		},
		{
			name:           "unknown user",
			userID:         "c0a80101-0000-0000-0000-00000000dead",
			mockErr:        userservice.ErrUserNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "user not found",
			wantStatus:     "Error",
		},
		{
			name:           "storage failure",
			userID:         userID,
			mockErr:        errors.New("connection refused"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "internal error",
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
			serviceMock := new(ProfileServiceMock)
			if tt.mockCalled {
				serviceMock.On("GetUserWithOrders", mock.Anything, tt.userID).
					Return(tt.mockProfile, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/user-service/users/"+tt.userID, nil)
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
			assert.Equal(t, user.UserID, data["userId"])
			assert.Equal(t, user.Email, data["email"])
			assert.Equal(t, user.Name, data["name"])

			orders, ok := data["orders"].([]any)
			assert.True(t, ok, "orders must be present even when empty")
			assert.Len(t, orders, tt.wantOrders)

			serviceMock.AssertExpectations(t)
		})
	}
}
