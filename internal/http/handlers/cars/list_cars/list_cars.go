package listcars

import (
	"carshare/internal/core/domain/car"
	c "carshare/internal/core/domain/common"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/services"
	service "carshare/internal/core/services/list_cars"
	"carshare/internal/http/handlers/response"
	"net/http"
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
	Cars []response.Car `json:"cars"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := car.ListCarsQuery{
		AvailableOnly: r.URL.Query().Get("available") == "true",
	}
	if company := r.URL.Query().Get("company"); company != "" {
		query.Company = c.NewOptional(company, true)
	}
	if kindCar := r.URL.Query().Get("kind_car"); kindCar != "" {
		query.KindCar = c.NewOptional(kindCar, true)
	}

	result, err := h.service.Run(r.Context(), service.Input{Query: query})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Cars: response.NewCars(result.Cars)}, http.StatusOK)
}
