package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/commerce-gateway/internal/models"
)

// SaveOrder сохраняет новый заказ в базу данных. Нарушение уникальности
// идентификатора заказа возвращается как ошибка без повторных попыток.
func (s *Storage) SaveOrder(ctx context.Context, order models.Order) error {
	const op = "storage.SaveOrder"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO orders (order_id, product_id, qty, unit_price, total_price,
			      user_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7);`
	if _, err := s.DB.ExecContext(ctx, query,
		order.OrderID, order.ProductID, order.Qty, order.UnitPrice, order.TotalPrice,
		order.UserID, order.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListOrdersByUserID возвращает все заказы пользователя.
func (s *Storage) ListOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	const op = "storage.ListOrdersByUserID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT order_id, product_id, qty, unit_price, total_price, user_id, created_at
			  FROM orders
			  WHERE user_id = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Order
	for rows.Next() {
		var o models.Order
		if err = rows.Scan(&o.OrderID, &o.ProductID, &o.Qty, &o.UnitPrice, &o.TotalPrice,
			&o.UserID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
