// Package failure переводит ошибки сервиса в HTTP-статус и JSON-ответ.
package failure

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/pledge-customizer/internal/http/response"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/pricing"
	"github.com/magabrotheeeer/pledge-customizer/internal/services/pledge"
	"github.com/magabrotheeeer/pledge-customizer/internal/storage/repository"
)

// Ошибки запроса, о которых клиенту сообщается текстом самой ошибки.
var badRequest = []error{
	pledge.ErrInvalidAction,
	pledge.ErrUnknownSuggestion,
	pricing.ErrUnknownField,
	pricing.ErrUnknownGroup,
	pricing.ErrNoUserPriceOption,
	pricing.ErrUserPriceUnavailable,
	pricing.ErrNotConvertible,
	pricing.ErrFixedPrice,
}

// Render пишет ответ с ошибкой. Неизвестные ошибки логируются и
// возвращаются со статусом 500 и сообщением msg.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	var verr *pledge.ValidationError
	switch {
	case errors.Is(err, repository.ErrPackageNotFound):
		log.Info("package not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(repository.ErrPackageNotFound.Error()))
		return
	case errors.Is(err, repository.ErrPledgeNotFound):
		log.Info("pledge not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(repository.ErrPledgeNotFound.Error()))
		return
	case errors.As(err, &verr):
		log.Info("pledge rejected", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.FieldErrors(pledge.ErrInvalidPledge.Error(), verr.Fields))
		return
	}

	for _, target := range badRequest {
		if errors.Is(err, target) {
			log.Info("bad request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(target.Error()))
			return
		}
	}

	log.Error(msg, sl.Err(err))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error(msg))
}
