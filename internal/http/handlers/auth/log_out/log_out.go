package logout

import (
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	logout "carshare/internal/core/services/log_out"
	"carshare/internal/http/handlers/auth"
	"carshare/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(
	service services.Service[logout.Input, logout.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	_, err := h.service.Run(
		r.Context(),
		logout.Input{Token: user.SessionToken(token)},
	)
	if errors.Is(err, user.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
