package car

import (
	"regexp"
	"time"
)

type ID int64

type Car struct {
	ID           ID
	Company      string
	Brand        string
	Model        string
	TypeCar      string
	StateNumber  string
	TypeEngine   string
	PowerReserve string
	KindCar      string
	IsAvailable  bool
	Latitude     float64
	Longitude    float64
	// Rating is the average of review ratings, 0 when the car has no reviews.
	Rating    float64
	CreatedAt time.Time
}

// Russian civil plate format: letter, three digits, two letters, region code.
// Only letters with a latin lookalike are allowed on real plates.
var stateNumberRe = regexp.MustCompile(`^[АВЕКМНОРСТУХABEKMHOPCTYX]\d{3}[АВЕКМНОРСТУХABEKMHOPCTYX]{2}\d{2,3}$`)

func ValidStateNumber(stateNumber string) bool {
	return stateNumberRe.MatchString(stateNumber)
}
