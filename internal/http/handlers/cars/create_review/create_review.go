package createreview

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/review"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	service "carshare/internal/core/services/create_review"
	"carshare/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
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
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type Result struct {
	Review response.Review `json:"review"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Rating, validation.Required, validation.Min(review.MinRating), validation.Max(review.MaxRating)),
		validation.Field(&i.Text, validation.Length(0, 4096)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawCarID := chi.URLParam(r, "carID")
	carID, err := strconv.ParseInt(rawCarID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid car ID", http.StatusBadRequest)
		return
	}

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
			CarID:  car.ID(carID),
			Rating: input.Rating,
			Text:   input.Text,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, car.ErrCarDoesNotExist):
			response.RenderError(rw, "car does not exist", http.StatusNotFound)
		case errors.Is(err, review.ErrReviewAlreadyLeft):
			response.RenderError(rw, "review already left", http.StatusUnprocessableEntity)
		case errors.Is(err, review.ErrInvalidRating):
			response.RenderError(rw, "invalid rating", http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rv := response.Review{}
	rv.FromDomainReview(result.Review)
	response.Render(rw, Result{Review: rv}, http.StatusCreated)
}
