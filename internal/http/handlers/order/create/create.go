// Package create реализует HTTP-обработчик создания нового заказа.
//
// Handler принимает JSON с данными заказа, валидирует их, извлекает
// идентификатор пользователя из пути, вызывает бизнес-логику создания
// заказа и возвращает представление созданной записи.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/commerce-gateway/internal/http/response"
	"github.com/magabrotheeeer/commerce-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/commerce-gateway/internal/models"
	orderservice "github.com/magabrotheeeer/commerce-gateway/internal/services/order"
)

// Service описывает интерфейс бизнес-логики создания заказа.
type Service interface {
	Create(ctx context.Context, userID string, req models.DummyOrder) (*models.Order, error)
}

// Handler управляет HTTP-запросами на создание новых заказов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания заказов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		log.Error("empty userId in path")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("userId is required"))
		return
	}

	order, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, orderservice.ErrPriceOverflow) || errors.Is(err, orderservice.ErrInvalidAmount) {
			log.Error("order rejected", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to create order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create order"))
		return
	}

	log.Info("order created", slog.String("order_id", order.OrderID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(models.ToResponseOrder(*order)))
}
