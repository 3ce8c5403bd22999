// Package services содержит логику агрегации профиля пользователя
// с его заказами из внешнего сервиса.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/commerce-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/commerce-gateway/internal/models"
	"github.com/magabrotheeeer/commerce-gateway/internal/storage/repository"
)

// ErrUserNotFound возвращается, когда запрошенный пользователь отсутствует.
// Это единственная фатальная ошибка агрегации.
var ErrUserNotFound = errors.New("user not found")

// ordersCacheTTL — время жизни закешированного списка заказов.
const ordersCacheTTL = time.Hour

// UserRepository описывает контракт чтения пользователей из базы данных.
type UserRepository interface {
	// GetUserByID возвращает пользователя по идентификатору или ошибку, если не найден.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// OrderFetcher описывает узкий контракт внешнего сервиса заказов:
// один метод получения списка заказов пользователя.
type OrderFetcher interface {
	ListOrders(ctx context.Context, userID string) ([]models.Order, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
}

// UserService отдаёт профиль пользователя вместе с его заказами.
// Сбой сервиса заказов не считается ошибкой всей операции: профиль
// возвращается с последним закешированным списком либо с пустым.
type UserService struct {
	users  UserRepository
	orders OrderFetcher
	cache  Cache
	log    *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository, orders OrderFetcher, cache Cache, log *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		orders: orders,
		cache:  cache,
		log:    log,
	}
}

// GetUserWithOrders возвращает профиль пользователя и его заказы.
//
// Отсутствие пользователя — фатальная ошибка. Любая ошибка сервиса
// заказов логируется и деградирует список до закешированного или пустого;
// операция при этом завершается успешно.
func (s *UserService) GetUserWithOrders(ctx context.Context, userID string) (*models.UserWithOrders, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cacheKey := fmt.Sprintf("orders:%s", userID)

	orderList, err := s.orders.ListOrders(ctx, userID)
	if err != nil {
		s.log.Error("order service is unavailable", sl.Err(err),
			slog.String("user_id", userID))

		var cached []models.Order
		if found, cerr := s.cache.Get(cacheKey, &cached); cerr == nil && found {
			s.log.Info("serving orders from cache", slog.String("user_id", userID))
			orderList = cached
		} else {
			orderList = []models.Order{}
		}
	} else {
		if cerr := s.cache.Set(cacheKey, orderList, ordersCacheTTL); cerr != nil {
			s.log.Warn("failed to cache orders", slog.String("key", cacheKey), sl.Err(cerr))
		}
	}

	if orderList == nil {
		orderList = []models.Order{}
	}

	return &models.UserWithOrders{
		User:   *user,
		Orders: orderList,
	}, nil
}
