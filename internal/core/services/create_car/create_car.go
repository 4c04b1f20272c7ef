package createcar

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"carshare/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	User         user.User
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
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Car car.Car
}

type service struct {
	log           logging.Logger
	carRepository car.Repository
	now           func() time.Time
}

func New(
	log logging.Logger,
	carRepository car.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if carRepository == nil {
		panic(e.NewNilArgumentError("carRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		carRepository: carRepository,
		now:           now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !car.ValidStateNumber(input.StateNumber) {
		return result, car.ErrInvalidStateNumber
	}

	coords := user.Coordinates{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := coords.Validate(); err != nil {
		return result, err
	}

	created, err := s.carRepository.Create(ctx, car.CreateCarInput{
		Company:      input.Company,
		Brand:        input.Brand,
		Model:        input.Model,
		TypeCar:      input.TypeCar,
		StateNumber:  input.StateNumber,
		TypeEngine:   input.TypeEngine,
		PowerReserve: input.PowerReserve,
		KindCar:      input.KindCar,
		IsAvailable:  input.IsAvailable,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"New car has been added to the catalog.",
		logging.Entry("carID", created.ID),
		logging.Entry("userID", input.User.ID),
	)
	return Result{Car: created}, nil
}
