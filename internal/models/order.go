package models

import "time"

// Order представляет заказ пользователя. Запись создаётся один раз
// и после создания не изменяется; TotalPrice вычисляется при создании
// и не пересчитывается.
type Order struct {
	OrderID    string    // Сгенерированный уникальный идентификатор заказа
	ProductID  string    // Идентификатор товара
	Qty        int64     // Количество (>0)
	UnitPrice  int64     // Цена за единицу (>0)
	TotalPrice int64     // Qty * UnitPrice
	UserID     string    // Владелец заказа
	CreatedAt  time.Time // Момент создания, назначается сервером
}

// DummyOrder используется для приёма данных нового заказа из JSON-запроса,
// прежде чем конвертировать их в Order.
type DummyOrder struct {
	ProductID string `json:"productId" validate:"required"`      // Идентификатор товара
	Qty       int64  `json:"qty" validate:"required,gt=0"`       // Количество (>0)
	UnitPrice int64  `json:"unitPrice" validate:"required,gt=0"` // Цена за единицу (>0)
}

// ResponseOrder — wire-представление заказа.
type ResponseOrder struct {
	OrderID    string    `json:"orderId"`
	ProductID  string    `json:"productId"`
	Qty        int64     `json:"qty"`
	UnitPrice  int64     `json:"unitPrice"`
	TotalPrice int64     `json:"totalPrice"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderCreatedEvent публикуется в брокер после успешного сохранения заказа.
type OrderCreatedEvent struct {
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	ProductID  string    `json:"product_id"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponseOrder конвертирует внутреннюю модель заказа в wire-представление.
func ToResponseOrder(o Order) ResponseOrder {
	return ResponseOrder{
		OrderID:    o.OrderID,
		ProductID:  o.ProductID,
		Qty:        o.Qty,
		UnitPrice:  o.UnitPrice,
		TotalPrice: o.TotalPrice,
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt,
	}
}

// FromResponseOrder конвертирует wire-представление обратно во внутреннюю
// модель. Используется клиентом сервиса заказов при агрегации профиля.
func FromResponseOrder(r ResponseOrder) Order {
	return Order{
		OrderID:    r.OrderID,
		ProductID:  r.ProductID,
		Qty:        r.Qty,
		UnitPrice:  r.UnitPrice,
		TotalPrice: r.TotalPrice,
		UserID:     r.UserID,
		CreatedAt:  r.CreatedAt,
	}
}
