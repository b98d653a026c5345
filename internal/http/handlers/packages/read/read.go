// Package read реализует HTTP-обработчик для получения пакета по имени.
package read

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
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/magabrotheeeer/pledge-customizer/internal/pricing"
)

// Handler обрабатывает запросы на получение пакета вместе с настраиваемыми полями.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения пакета.
type Service interface {
	Package(ctx context.Context, name string) (*models.Package, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить пакет
// @Description Возвращает пакет и его настраиваемые поля с границами.
// @Tags Packages
// @Produce  json
// @Param name path string true "Имя пакета"
// @Success 200 {object} map[string]any "Пакет"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /packages/{name} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.packages.read"
	name := chi.URLParam(r, "name")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		sl.Package(name),
	)

	pkg, err := h.service.Package(r.Context(), name)
	if err != nil {
		failure.Render(w, r, log, err, "could not read package")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"package": pkg,
		"fields":  pricing.ConfigurableFields(pkg),
	}))
}
