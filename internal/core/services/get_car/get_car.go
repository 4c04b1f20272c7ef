package getcar

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	CarID car.ID
}

type Result struct {
	Car car.Car
}

type service struct {
	log           logging.Logger
	carRepository car.Repository
}

func New(
	log logging.Logger,
	carRepository car.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if carRepository == nil {
		panic(e.NewNilArgumentError("carRepository"))
	}
	return &service{
		log:           log,
		carRepository: carRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	c, err := s.carRepository.GetByID(ctx, input.CarID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, car.ErrCarDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("carID", input.CarID))
		return result, err
	}
	return Result{Car: c}, nil
}
