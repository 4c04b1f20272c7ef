package review

import (
	"carshare/internal/core/domain/car"
	"carshare/internal/core/domain/user"
	"context"
	"time"
)

type CreateReviewInput struct {
	CarID     car.ID
	AuthorID  user.ID
	Rating    int
	Text      string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateReviewInput) (Review, error)
	ListByCarID(ctx context.Context, carID car.ID) ([]Review, error)
}
