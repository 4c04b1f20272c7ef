package review

import (
	"carshare/internal/core/domain/car"
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Reviews     []Review
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateReviewInput) (rv Review, err error) {
	if r.ReturnError {
		return rv, fmt.Errorf("could not create review %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Reviews {
		if existing.CarID == input.CarID && existing.AuthorID == input.AuthorID {
			return rv, ErrReviewAlreadyLeft
		}
		maxID = existing.ID
	}
	rv = Review{
		ID:        maxID + 1,
		CarID:     input.CarID,
		AuthorID:  input.AuthorID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: input.CreatedAt,
	}
	r.Reviews = append(r.Reviews, rv)
	return rv, nil
}

func (r *FakeRepository) ListByCarID(ctx context.Context, carID car.ID) ([]Review, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	reviews := make([]Review, 0)
	for _, rv := range r.Reviews {
		if rv.CarID == carID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}
