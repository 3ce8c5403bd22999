// Package services содержит логику регистрации и аутентификации пользователей.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/commerce-gateway/internal/lib/jwt"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/password"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/commerce-gateway/internal/models"
)

// ErrInvalidCredentials возвращается при любом отказе входа: неизвестный
// email и неверный пароль неразличимы для вызывающего кода, чтобы не
// позволять перебор учётных записей. Причина пишется только в лог.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// SaveUser сохраняет нового пользователя.
	SaveUser(ctx context.Context, user models.User) error

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию пользователей и выпуск токенов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает нового пользователя: генерирует идентификатор,
// хэширует пароль и сохраняет запись. Исходный пароль не сохраняется.
func (s *AuthService) Register(ctx context.Context, req models.DummyUser) (*models.User, error) {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		UserID:       uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login проверяет учётные данные и возвращает токен и идентификатор
// пользователя. Отсутствие пользователя и несовпадение пароля логируются
// по-разному, но наружу возвращается одна и та же ошибка.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, userID string, err error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		s.log.Warn("login attempt for unknown email", sl.Err(err))
		return "", "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		s.log.Warn("login attempt with wrong password", slog.String("user_id", user.UserID))
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.UserID)
	if err != nil {
		return "", "", err
	}
	return token, user.UserID, nil
}
