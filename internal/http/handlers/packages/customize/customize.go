// Package customize реализует HTTP-обработчик действий формы настройки пакета.
//
// Клиент присылает текущее состояние формы и одно действие. В ответ приходит
// изменение формы, применённая форма, видимые ошибки и запрошенная навигация.
package customize

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/failure"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/response"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/magabrotheeeer/pledge-customizer/internal/services/pledge"
)

// Handler обрабатывает действия формы настройки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики формы настройки.
type Service interface {
	Customize(ctx context.Context, name string, req models.CustomizeRequest) (*pledge.CustomizeResponse, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Действие формы настройки
// @Description Применяет одно действие пользователя к форме пакета.
// @Tags Packages
// @Accept  json
// @Produce  json
// @Param name path string true "Имя пакета"
// @Param request body models.CustomizeRequest true "Форма и действие"
// @Success 200 {object} map[string]any "Изменение формы"
// @Failure 400 {object} response.ErrorResponse "Некорректное действие"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /packages/{name}/customize [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.packages.customize"
	name := chi.URLParam(r, "name")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		sl.Package(name),
	)

	var req models.CustomizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.service.Customize(r.Context(), name, req)
	if err != nil {
		failure.Render(w, r, log, err, "could not apply action")
		return
	}

	log.Debug("action applied", slog.String("action", req.Action.Type))
	render.JSON(w, r, response.StatusOKWithData(res))
}
