package response

import (
	"carshare/internal/core/domain/review"
	"time"
)

type Review struct {
	ID        int64     `json:"id"`
	CarID     int64     `json:"car_id"`
	AuthorID  int64     `json:"author_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) FromDomainReview(dr review.Review) {
	r.ID = int64(dr.ID)
	r.CarID = int64(dr.CarID)
	r.AuthorID = int64(dr.AuthorID)
	r.Rating = dr.Rating
	r.Text = dr.Text
	r.CreatedAt = dr.CreatedAt
}

func NewReviews(drs []review.Review) []Review {
	reviews := make([]Review, len(drs))
	for ix, dr := range drs {
		reviews[ix].FromDomainReview(dr)
	}
	return reviews
}
