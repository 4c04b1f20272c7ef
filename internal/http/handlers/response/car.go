package response

import (
	"carshare/internal/core/domain/car"
)

type Car struct {
	ID           int64   `json:"id"`
	Company      string  `json:"company"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	TypeCar      string  `json:"type_car"`
	StateNumber  string  `json:"state_number"`
	TypeEngine   string  `json:"type_engine"`
	PowerReserve string  `json:"power_reserve"`
	KindCar      string  `json:"kind_car"`
	IsAvailable  bool    `json:"is_available"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Rating       float64 `json:"rating"`
}

func (c *Car) FromDomainCar(dc car.Car) {
	c.ID = int64(dc.ID)
	c.Company = dc.Company
	c.Brand = dc.Brand
	c.Model = dc.Model
	c.TypeCar = dc.TypeCar
	c.StateNumber = dc.StateNumber
	c.TypeEngine = dc.TypeEngine
	c.PowerReserve = dc.PowerReserve
	c.KindCar = dc.KindCar
	c.IsAvailable = dc.IsAvailable
	c.Latitude = dc.Latitude
	c.Longitude = dc.Longitude
	c.Rating = dc.Rating
}

func NewCars(dcs []car.Car) []Car {
	cars := make([]Car, len(dcs))
	for ix, dc := range dcs {
		cars[ix].FromDomainCar(dc)
	}
	return cars
}
