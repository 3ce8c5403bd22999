// Package models содержит доменные структуры пользователей и заказов,
// а также типы для приёма и отдачи данных по HTTP. Преобразование между
// wire-представлением и внутренней моделью выполняется явными функциями.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// PasswordHash устанавливается один раз при создании и никогда
// не попадает в ответы и логи.
type User struct {
	UserID       string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Name         string    // Отображаемое имя
	PasswordHash string    // bcrypt-хэш пароля
	CreatedAt    time.Time // Дата регистрации
}

// DummyUser используется для приёма данных регистрации из JSON-запроса,
// прежде чем конвертировать их в User.
type DummyUser struct {
	Email    string `json:"email" validate:"required,email"` // Электронная почта
	Name     string `json:"name" validate:"required,min=2"`  // Имя (минимум 2 символа)
	Password string `json:"pwd" validate:"required,min=8"`   // Пароль (минимум 8 символов)
}

// ResponseUser — wire-представление пользователя без хэша пароля.
type ResponseUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// UserWithOrders — агрегированный профиль: пользователь плюс его заказы.
// Orders всегда не nil: при недоступности сервиса заказов список пустой.
type UserWithOrders struct {
	User   User
	Orders []Order
}

// ToResponseUser конвертирует внутреннюю модель в wire-представление.
func ToResponseUser(u User) ResponseUser {
	return ResponseUser{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
	}
}
