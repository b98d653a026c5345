// Package invalidate реализует HTTP-обработчик сброса кеша пакета.
package invalidate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/failure"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/response"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
)

// Handler сбрасывает кеш каталога и одного пакета после изменения в базе.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сброса кеша.
type Service interface {
	InvalidatePackages(ctx context.Context, names ...string) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сбросить кеш пакета
// @Description Удаляет из кеша каталог пакетов и пакет с указанным именем.
// @Tags Packages
// @Produce  json
// @Param name path string true "Имя пакета"
// @Success 200 {object} map[string]any "Кеш сброшен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /packages/{name}/cache [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.packages.invalidate"
	name := chi.URLParam(r, "name")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		sl.Package(name),
	)

	if err := h.service.InvalidatePackages(r.Context(), name); err != nil {
		failure.Render(w, r, log, err, "could not invalidate cache")
		return
	}

	log.Info("package cache invalidated")
	render.JSON(w, r, response.StatusOKWithData(map[string]string{"package": name}))
}
