package listcars

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/services"
	"context"
)

type Input struct {
	Query car.ListCarsQuery
}

type Result struct {
	Cars []car.Car
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
	cars, err := s.carRepository.List(ctx, input.Query)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Cars: cars}, nil
}
