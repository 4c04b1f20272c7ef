package confirmpasswordreset

import (
	c "carshare/internal/core/domain/common"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	service "carshare/internal/core/services/confirm_password_reset"
	"carshare/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Code, validation.Required, validation.Length(1, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(1, 256)),
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

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			Email:       c.NewEmail(input.Email),
			Code:        user.ResetCode(strings.ToUpper(strings.TrimSpace(input.Code))),
			NewPassword: user.RawPassword(input.Password),
		},
	)
	if err != nil {
		var errInvalidCode *user.InvalidResetCodeError
		var errPolicy *user.PasswordPolicyError
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "user does not exist", http.StatusUnprocessableEntity)
		case errors.Is(err, user.ErrResetAttemptsExceeded):
			response.RenderError(rw, "password reset attempts exceeded", http.StatusUnprocessableEntity)
		case errors.As(err, &errInvalidCode):
			response.Render(
				rw,
				map[string]interface{}{
					"error":              "invalid password reset code",
					"remaining_attempts": errInvalidCode.RemainingAttempts,
				},
				http.StatusUnprocessableEntity,
			)
		case errors.As(err, &errPolicy):
			response.Render(
				rw,
				map[string]interface{}{"error": "password is too weak", "violations": errPolicy.Violations},
				http.StatusBadRequest,
			)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
