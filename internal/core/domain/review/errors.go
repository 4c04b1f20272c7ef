package review

import "errors"

var (
	ErrReviewDoesNotExist = errors.New("review does not exist")
	ErrReviewAlreadyLeft  = errors.New("review already left for this car")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
