package deleteuser

import (
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	service "carshare/internal/core/services/delete_user"
	"carshare/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
	isDebug bool
}

func New(
	service services.Service[service.Input, service.Result],
	isDebug bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isDebug: isDebug}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawUserID := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid user ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		service.Input{TargetUserID: user.ID(userID)},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			if h.isDebug {
				response.RenderError(rw, err.Error(), http.StatusInternalServerError)
				return
			}
			response.RenderInternalError(rw)
		}
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
