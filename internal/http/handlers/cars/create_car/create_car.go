package createcar

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	service "carshare/internal/core/services/create_car"
	"carshare/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Company      string  `json:"company"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	TypeCar      string  `json:"type_car"`
	StateNumber  string  `json:"state_number"`
	TypeEngine   string  `json:"type_engine"`
	PowerReserve string  `json:"power_reserve"`
	KindCar      string  `json:"kind_car"`
	IsAvailable  bool    `json:"is_available"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type Result struct {
	Car response.Car `json:"car"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Company, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Brand, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Model, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.StateNumber, validation.Required, validation.Length(1, 16)),
		validation.Field(&i.TypeCar, validation.Length(0, 256)),
		validation.Field(&i.TypeEngine, validation.Length(0, 256)),
		validation.Field(&i.PowerReserve, validation.Length(0, 256)),
		validation.Field(&i.KindCar, validation.Length(0, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Company:      input.Company,
			Brand:        input.Brand,
			Model:        input.Model,
			TypeCar:      input.TypeCar,
			StateNumber:  input.StateNumber,
			TypeEngine:   input.TypeEngine,
			PowerReserve: input.PowerReserve,
			KindCar:      input.KindCar,
			IsAvailable:  input.IsAvailable,
			Latitude:     input.Latitude,
			Longitude:    input.Longitude,
		},
	)
	if err != nil {
		var errValidation *user.CoordinatesValidationError
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, car.ErrInvalidStateNumber):
			response.RenderError(rw, "invalid state number", http.StatusBadRequest)
		case errors.As(err, &errValidation):
			response.RenderError(rw, errValidation.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	c := response.Car{}
	c.FromDomainCar(result.Car)
	response.Render(rw, Result{Car: c}, http.StatusCreated)
}
