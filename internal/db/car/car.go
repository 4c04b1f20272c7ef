package car

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/db"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
)

const carColumns = `c.id, c.company, c.brand, c.model, c.type_car, c.state_number,
	c.type_engine, c.power_reserve, c.kind_car, c.is_available, c.latitude, c.longitude,
	COALESCE(AVG(r.rating), 0), c.created_at`

type PgxCarRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxCarRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCarRepository{db: db}
}

func (r *PgxCarRepository) Create(ctx context.Context, input car.CreateCarInput) (c car.Car, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO car (
			company, brand, model, type_car, state_number, type_engine,
			power_reserve, kind_car, is_available, latitude, longitude, created_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		input.Company,
		input.Brand,
		input.Model,
		input.TypeCar,
		input.StateNumber,
		input.TypeEngine,
		input.PowerReserve,
		input.KindCar,
		input.IsAvailable,
		input.Latitude,
		input.Longitude,
		input.CreatedAt,
	)
	var id int64
	if err := row.Scan(&id); err != nil {
		return c, err
	}
	c = car.Car{
		ID:           car.ID(id),
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
	return c, nil
}

func (r *PgxCarRepository) GetByID(ctx context.Context, id car.ID) (c car.Car, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+carColumns+`
		 FROM car c LEFT JOIN review r ON r.car_id = c.id
		 WHERE c.id = $1
		 GROUP BY c.id`,
		int64(id),
	)
	c, err = scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, car.ErrCarDoesNotExist
	}
	return c, err
}

func (r *PgxCarRepository) List(ctx context.Context, query car.ListCarsQuery) ([]car.Car, error) {
	sql := `SELECT ` + carColumns + ` FROM car c LEFT JOIN review r ON r.car_id = c.id WHERE true`
	args := make([]interface{}, 0, 2)
	if query.AvailableOnly {
		sql += ` AND c.is_available`
	}
	if query.Company.IsPresent {
		args = append(args, query.Company.Value)
		sql += fmt.Sprintf(` AND c.company = $%d`, len(args))
	}
	if query.KindCar.IsPresent {
		args = append(args, query.KindCar.Value)
		sql += fmt.Sprintf(` AND c.kind_car = $%d`, len(args))
	}
	sql += ` GROUP BY c.id ORDER BY c.id`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]car.Car, 0)
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cars, nil
}

func scanCar(row pgx.Row) (c car.Car, err error) {
	var id int64
	err = row.Scan(
		&id,
		&c.Company,
		&c.Brand,
		&c.Model,
		&c.TypeCar,
		&c.StateNumber,
		&c.TypeEngine,
		&c.PowerReserve,
		&c.KindCar,
		&c.IsAvailable,
		&c.Latitude,
		&c.Longitude,
		&c.Rating,
		&c.CreatedAt,
	)
	if err != nil {
		return c, err
	}
	c.ID = car.ID(id)
	return c, nil
}
