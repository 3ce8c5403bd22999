// Package orders реализует HTTP-клиент сервиса заказов.
//
// Клиент выполняет один синхронный запрос с ограниченным таймаутом
// и без повторных попыток: обработку сбоев берёт на себя агрегатор.
package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/magabrotheeeer/commerce-gateway/internal/config"
	"github.com/magabrotheeeer/commerce-gateway/internal/models"
)

// Client — клиент сервиса заказов поверх resty.
type Client struct {
	client *resty.Client
}

// NewClient создаёт клиент с базовым адресом и таймаутом из конфигурации.
func NewClient(cfg config.OrderClient) *Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	return &Client{client: cli}
}

// listOrdersResponse — конверт ответа сервиса заказов.
type listOrdersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Orders []models.ResponseOrder `json:"orders"`
	} `json:"data"`
}

// ListOrders возвращает список заказов пользователя userID.
func (c *Client) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	const op = "clients.orders.ListOrders"

	var out listOrdersResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/order-service/%s/orders", userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status())
	}

	result := make([]models.Order, 0, len(out.Data.Orders))
	for _, o := range out.Data.Orders {
		result = append(result, models.FromResponseOrder(o))
	}
	return result, nil
}
