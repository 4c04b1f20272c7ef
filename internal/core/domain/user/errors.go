package user

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrSessionDoesNotExist   = errors.New("session does not exist")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrResetAttemptsExceeded = errors.New("password reset attempts exceeded")
	ErrCoordinatesDoNotExist = errors.New("coordinates do not exist")
)

// InvalidResetCodeError is returned when a reset confirmation carries a wrong
// or missing code. RemainingAttempts is the budget left before the issued
// code becomes unusable, counted before the failed attempt is recorded.
type InvalidResetCodeError struct {
	RemainingAttempts uint
}

func (e *InvalidResetCodeError) Error() string {
	return fmt.Sprintf("invalid password reset code, %d attempts remaining", e.RemainingAttempts)
}

type PasswordPolicyError struct {
	Violations []string
}

func (e *PasswordPolicyError) Error() string {
	return "password is too weak: " + strings.Join(e.Violations, "; ")
}

type FieldError struct {
	Field string
	Msg   string
}

type CoordinatesValidationError struct {
	Fields []FieldError
}

func (e *CoordinatesValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+" "+f.Msg)
	}
	return "invalid coordinates: " + strings.Join(msgs, ", ")
}
