// Package poll реализует HTTP-обработчик опроса прогресса запроса статистики.
//
// Handler читает идентификатор из параметра query и возвращает процент
// готовности, а при 100% и результат. Для пустого или неизвестного
// идентификатора отвечает пустым объектом `{}` со статусом 200.
package poll

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-statistics/internal/http/response"
	"github.com/magabrotheeeer/user-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/user-statistics/internal/models"
	"github.com/magabrotheeeer/user-statistics/internal/services/report"
)

// Handler обрабатывает запросы прогресса по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики опроса прогресса.
type Service interface {
	Poll(ctx context.Context, queryID string) (*models.ResponseData, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить прогресс запроса статистики
// @Description Возвращает процент готовности; result заполнен только при 100%. Для пустого или неизвестного query возвращает {}.
// @Tags Reports
// @Produce  json
// @Param query query string true "Идентификатор запроса"
// @Success 200 {object} models.ResponseData "Прогресс запроса или {}"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /report/info [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.poll"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("query")
	res, err := h.service.Poll(r.Context(), query)
	if errors.Is(err, report.ErrEmptyQuery) || errors.Is(err, report.ErrQueryNotFound) {
		log.Info("nothing to report", slog.String("query", query), sl.Err(err))
		render.JSON(w, r, response.Empty())
		return
	}
	if err != nil {
		log.Error("failed to poll request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read request"))
		return
	}

	log.Debug("progress computed", slog.String("query", query), slog.Int("percent", res.Percent))
	render.JSON(w, r, res)
}
