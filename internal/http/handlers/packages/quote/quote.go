// Package quote реализует HTTP-обработчик расчёта цены пакета по значениям формы.
//
// Handler принимает текущие значения формы и возвращает минимальную цену,
// цену для отображения, бонусную стоимость, предложения и ошибки оформления.
package quote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/handlers/failure"
	"github.com/magabrotheeeer/pledge-customizer/internal/http/response"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/magabrotheeeer/pledge-customizer/internal/services/pledge"
)

// Handler обрабатывает запросы расчёта цены.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики расчёта цены.
type Service interface {
	Quote(ctx context.Context, name string, req models.QuoteRequest) (*pledge.Quote, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Рассчитать цену пакета
// @Description Возвращает минимальную цену, предложения и ошибки для значений формы.
// @Tags Packages
// @Accept  json
// @Produce  json
// @Param name path string true "Имя пакета"
// @Param request body models.QuoteRequest true "Значения формы"
// @Success 200 {object} map[string]any "Расчёт цены"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /packages/{name}/quote [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.packages.quote"
	name := chi.URLParam(r, "name")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		sl.Package(name),
	)

	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	q, err := h.service.Quote(r.Context(), name, req)
	if err != nil {
		failure.Render(w, r, log, err, "could not calculate price")
		return
	}

	log.Debug("price calculated", slog.Int("min_price", q.MinPrice))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"quote": q,
	}))
}
