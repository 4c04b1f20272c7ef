package listcarreviews

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/domain/review"
	"carshare/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	CarID car.ID
}

type Result struct {
	Reviews []review.Review
}

type service struct {
	log              logging.Logger
	carRepository    car.Repository
	reviewRepository review.Repository
}

func New(
	log logging.Logger,
	carRepository car.Repository,
	reviewRepository review.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if carRepository == nil {
		panic(e.NewNilArgumentError("carRepository"))
	}
	if reviewRepository == nil {
		panic(e.NewNilArgumentError("reviewRepository"))
	}
	return &service{
		log:              log,
		carRepository:    carRepository,
		reviewRepository: reviewRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if _, err := s.carRepository.GetByID(ctx, input.CarID); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, car.ErrCarDoesNotExist) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("carID", input.CarID))
		return result, err
	}

	reviews, err := s.reviewRepository.ListByCarID(ctx, input.CarID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("carID", input.CarID))
		return result, err
	}
	return Result{Reviews: reviews}, nil
}
