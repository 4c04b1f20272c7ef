package setcoordinates

import (
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	service "carshare/internal/core/services/set_user_coordinates"
	"carshare/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
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

type Input struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Result struct {
	Coordinates response.Coordinates `json:"coordinates"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func renderPayloadExample(rw http.ResponseWriter) {
	response.Render(
		rw,
		map[string]interface{}{
			"error":   "latitude and longitude are required",
			"example": map[string]float64{"latitude": 90, "longitude": 180},
		},
		http.StatusBadRequest,
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawUserID := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid user ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		renderPayloadExample(rw)
		return
	}
	if input.Latitude == nil || input.Longitude == nil {
		renderPayloadExample(rw)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			TargetUserID: user.ID(userID),
			Latitude:     *input.Latitude,
			Longitude:    *input.Longitude,
		},
	)
	if err != nil {
		var errValidation *user.CoordinatesValidationError
		switch {
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.As(err, &errValidation):
			violations := make(map[string]string, len(errValidation.Fields))
			for _, f := range errValidation.Fields {
				violations[f.Field] = f.Msg
			}
			response.Render(
				rw,
				map[string]interface{}{"error": "invalid coordinates", "violations": violations},
				http.StatusBadRequest,
			)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	coords := response.Coordinates{}
	coords.FromDomainCoordinates(result.Coordinates)
	response.Render(rw, Result{Coordinates: coords}, http.StatusOK)
}
