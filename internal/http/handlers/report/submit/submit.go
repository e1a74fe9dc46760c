// Package submit реализует HTTP-обработчик приема запроса статистики пользователя.
//
// Handler принимает JSON с userId, timeFrom и timeTo, передает его сервису
// и возвращает JSON-строку с идентификатором запроса. Некорректный запрос
// получает пустой объект `{}` со статусом 200.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-statistics/internal/http/response"
	"github.com/magabrotheeeer/user-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/user-statistics/internal/models"
	"github.com/magabrotheeeer/user-statistics/internal/services/report"
)

// Handler управляет HTTP-запросами на создание запросов статистики.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики приема запроса.
type Service interface {
	Submit(ctx context.Context, req *models.UserStatisticRequest) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Принять запрос статистики пользователя
// @Description Сохраняет запрос и возвращает его идентификатор (UUID) JSON-строкой. Для некорректного запроса возвращает {}.
// @Tags Reports
// @Accept  json
// @Produce  json
// @Param request body models.UserStatisticRequest true "Пользователь и период"
// @Success 200 {string} string "Идентификатор запроса или {}"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /report/user_statistics [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.submit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req *models.UserStatisticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info("failed to decode request", sl.Err(err))
		render.JSON(w, r, response.Empty())
		return
	}

	if req != nil {
		if err := h.validate.Struct(req); err != nil {
			log.Info("validation failed", sl.Err(err))
			render.JSON(w, r, response.Empty())
			return
		}
	}

	queryID, err := h.service.Submit(r.Context(), req)
	if errors.Is(err, report.ErrInvalidRequest) {
		log.Info("invalid request", sl.Err(err))
		render.JSON(w, r, response.Empty())
		return
	}
	if err != nil {
		log.Error("failed to submit request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save request"))
		return
	}

	log.Info("request submitted", slog.String("query_id", queryID))
	render.JSON(w, r, queryID)
}
