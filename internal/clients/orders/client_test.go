package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/commerce-gateway/internal/config"
)

func TestListOrders_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/order-service/u1/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"data": {
				"orders": [
					{"orderId": "o1", "productId": "p1", "qty": 3, "unitPrice": 1000, "totalPrice": 3000, "userId": "u1"},
					{"orderId": "o2", "productId": "p2", "qty": 1, "unitPrice": 500, "totalPrice": 500, "userId": "u1"}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(config.OrderClient{BaseURL: srv.URL, Timeout: 2 * time.Second})

	got, err := client.ListOrders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "o1", got[0].OrderID)
	assert.Equal(t, int64(3000), got[0].TotalPrice)
	assert.Equal(t, "o2", got[1].OrderID)
}

func TestListOrders_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK", "data": {"orders": []}}`))
	}))
	defer srv.Close()

	client := NewClient(config.OrderClient{BaseURL: srv.URL, Timeout: 2 * time.Second})

	got, err := client.ListOrders(context.Background(), "u9")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListOrders_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(config.OrderClient{BaseURL: srv.URL, Timeout: 2 * time.Second})

	_, err := client.ListOrders(context.Background(), "u1")
	require.Error(t, err)
}

func TestListOrders_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	client := NewClient(config.OrderClient{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.ListOrders(context.Background(), "u1")
	require.Error(t, err)
}
