// Package list реализует HTTP-обработчик для получения списка пакетов пледжа.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/failure"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/response"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// Handler обрабатывает запросы на получение всех пакетов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения каталога пакетов.
type Service interface {
	Packages(ctx context.Context) ([]*models.Package, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пакетов
// @Description Возвращает все пакеты с опциями.
// @Tags Packages
// @Produce  json
// @Success 200 {object} map[string]any "Список пакетов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /packages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.packages.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	packages, err := h.service.Packages(r.Context())
	if err != nil {
		failure.Render(w, r, log, err, "could not list packages")
		return
	}

	log.Debug("packages listed", slog.Int("count", len(packages)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"packages": packages,
	}))
}
