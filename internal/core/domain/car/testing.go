package car

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Cars        []Car
	RatingByID  map[ID]float64
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{RatingByID: make(map[ID]float64)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateCarInput) (car Car, err error) {
	if r.ReturnError {
		return car, fmt.Errorf("could not create car %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, c := range r.Cars {
		maxID = c.ID
	}
	car = Car{
		ID:           maxID + 1,
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
		CreatedAt:    input.CreatedAt,
	}
	r.Cars = append(r.Cars, car)
	return car, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (car Car, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, c := range r.Cars {
		if c.ID == id {
			c.Rating = r.RatingByID[id]
			return c, nil
		}
	}
	return car, ErrCarDoesNotExist
}

func (r *FakeRepository) List(ctx context.Context, query ListCarsQuery) ([]Car, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	cars := make([]Car, 0, len(r.Cars))
	for _, c := range r.Cars {
		if query.AvailableOnly && !c.IsAvailable {
			continue
		}
		if query.Company.IsPresent && c.Company != query.Company.Value {
			continue
		}
		if query.KindCar.IsPresent && c.KindCar != query.KindCar.Value {
			continue
		}
		c.Rating = r.RatingByID[c.ID]
		cars = append(cars, c)
	}
	return cars, nil
}
