package review

import (
	"carshare/internal/core/domain/car"
	"carshare/internal/core/domain/user"
	"time"
)

type ID int64

const MinRating = 1
const MaxRating = 5

type Review struct {
	ID        ID
	CarID     car.ID
	AuthorID  user.ID
	Rating    int
	Text      string
	CreatedAt time.Time
}
