package getcar

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/services"
	service "carshare/internal/core/services/get_car"
	"carshare/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Car response.Car `json:"car"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawCarID := chi.URLParam(r, "carID")
	carID, err := strconv.ParseInt(rawCarID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid car ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{CarID: car.ID(carID)})
	if err != nil {
		if errors.Is(err, car.ErrCarDoesNotExist) {
			response.RenderError(rw, "car does not exist", http.StatusNotFound)
			return
		}
		response.RenderInternalError(rw)
		return
	}

	c := response.Car{}
	c.FromDomainCar(result.Car)
	response.Render(rw, Result{Car: c}, http.StatusOK)
}
