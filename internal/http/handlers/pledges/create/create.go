// Package create реализует HTTP-обработчик оформления пледжа.
//
// Handler принимает пакет, значения формы и email, валидирует запрос,
// вызывает бизнес-логику оформления и возвращает сохранённый пледж.
// Ошибки формы возвращаются со статусом 422 и сообщениями по полям.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/failure"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/response"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

// Handler управляет HTTP-запросами на оформление пледжа.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис оформления пледжей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики оформления пледжа.
type Service interface {
	Submit(ctx context.Context, req models.PledgeRequest) (*models.Pledge, error)
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
// @Summary Оформить пледж
// @Description Проверяет форму, сохраняет пледж и публикует событие pledge.created.
// @Tags Pledges
// @Accept  json
// @Produce  json
// @Param request body models.PledgeRequest true "Пакет, значения формы и email"
// @Success 201 {object} map[string]any "Пледж оформлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /pledges [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pledges.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PledgeRequest
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

	p, err := h.service.Submit(r.Context(), req)
	if err != nil {
		failure.Render(w, r, log, err, "could not create pledge")
		return
	}

	log.Info("pledge created", slog.String("id", p.ID.String()), sl.Package(p.PackageName))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"pledge": p,
	}))
}
