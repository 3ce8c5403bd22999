// Package profile реализует HTTP-обработчик получения профиля пользователя
// вместе с его заказами. Недоступность сервиса заказов не приводит к ошибке:
// профиль возвращается с пустым списком.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/commerce-gateway/internal/http/response"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/commerce-gateway/internal/models"
	userservice "github.com/magabrotheeeer/commerce-gateway/internal/services/user"
)

// Service описывает интерфейс агрегации профиля с заказами.
type Service interface {
	GetUserWithOrders(ctx context.Context, userID string) (*models.UserWithOrders, error)
}

// Handler обрабатывает HTTP-запросы получения профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		log.Error("empty userId in path")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("userId is required"))
		return
	}

	profile, err := h.service.GetUserWithOrders(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			log.Warn("user not found", slog.String("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to get user profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	orders := make([]models.ResponseOrder, 0, len(profile.Orders))
	for _, o := range profile.Orders {
		orders = append(orders, models.ToResponseOrder(o))
	}

	log.Info("profile aggregated", slog.String("user_id", userID),
		slog.Int("orders", len(orders)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"userId": profile.User.UserID,
		"email":  profile.User.Email,
		"name":   profile.User.Name,
		"orders": orders,
	}))
}
