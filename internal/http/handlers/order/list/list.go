// Package list реализует HTTP-обработчик получения списка заказов пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/commerce-gateway/internal/http/response"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/commerce-gateway/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения заказов.
type Service interface {
	ListByUserID(ctx context.Context, userID string) ([]models.Order, error)
}

// Handler управляет HTTP-запросами на чтение заказов пользователя.
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
	const op = "handlers.order.list"

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

	orderList, err := h.service.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list orders"))
		return
	}

	orders := make([]models.ResponseOrder, 0, len(orderList))
	for _, o := range orderList {
		orders = append(orders, models.ToResponseOrder(o))
	}

	log.Info("orders listed", slog.String("user_id", userID), slog.Int("count", len(orders)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"orders": orders,
	}))
}
