package car

import "errors"

var (
	ErrCarDoesNotExist    = errors.New("car does not exist")
	ErrInvalidStateNumber = errors.New("invalid state number")
)
