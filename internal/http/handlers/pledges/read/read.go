// Package read реализует HTTP-обработчик для получения пледжа по ID.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/failure"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/response"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// Handler обрабатывает запросы на получение пледжа по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения пледжа.
type Service interface {
	Pledge(ctx context.Context, id uuid.UUID) (*models.Pledge, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить пледж
// @Tags Pledges
// @Produce  json
// @Param id path string true "ID пледжа"
// @Success 200 {object} map[string]any "Пледж"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Пледж не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /pledges/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pledges.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	p, err := h.service.Pledge(r.Context(), id)
	if err != nil {
		failure.Render(w, r, log, err, "could not read pledge")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"pledge": p,
	}))
}
