package car

import (
	c "carshare/internal/core/domain/common"
	"context"
	"time"
)

type CreateCarInput struct {
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
	CreatedAt    time.Time
}

type ListCarsQuery struct {
	AvailableOnly bool
	Company       c.Optional[string]
	KindCar       c.Optional[string]
}

type Repository interface {
	Create(ctx context.Context, input CreateCarInput) (Car, error)
	GetByID(ctx context.Context, id ID) (Car, error)
	List(ctx context.Context, query ListCarsQuery) ([]Car, error)
}
