// Package health реализует HTTP-обработчик проверки готовности сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-statistics/internal/http/response"
	"github.com/magabrotheeeer/user-statistics/internal/lib/sl"
)

const pingTimeout = 2 * time.Second

// Pinger описывает зависимость, доступность которой проверяется.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler проверяет все зарегистрированные зависимости.
type Handler struct {
	log  *slog.Logger
	deps map[string]Pinger
}

// New создает Handler. deps содержит зависимости по имени.
func New(log *slog.Logger, deps map[string]Pinger) *Handler {
	return &Handler{
		log:  log,
		deps: deps,
	}
}

// ServeHTTP godoc
// @Summary Проверка готовности
// @Tags System
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.ErrorResponse
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			h.log.Error("dependency is unavailable", slog.String("op", op), slog.String("dependency", name), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error(name+" is unavailable"))
			return
		}
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "ok",
	}))
}
