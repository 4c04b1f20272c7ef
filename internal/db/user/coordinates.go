package user

import (
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/user"
	"carshare/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

type PgxCoordinatesRepository struct {
	db db.DBTX
}

func NewPgxCoordinatesRepository(db db.DBTX) *PgxCoordinatesRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCoordinatesRepository{db: db}
}

func (r *PgxCoordinatesRepository) GetByUserID(ctx context.Context, userID user.ID) (coords user.Coordinates, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT user_id, latitude, longitude, updated_at FROM user_coordinates WHERE user_id = $1`,
		int64(userID),
	)
	coords, err = scanCoordinates(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return coords, user.ErrCoordinatesDoNotExist
	}
	return coords, err
}

func (r *PgxCoordinatesRepository) Set(ctx context.Context, input user.SetCoordinatesInput) (coords user.Coordinates, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO user_coordinates (user_id, latitude, longitude, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = EXCLUDED.updated_at
		 RETURNING user_id, latitude, longitude, updated_at`,
		int64(input.UserID),
		input.Latitude,
		input.Longitude,
		input.UpdatedAt,
	)
	return scanCoordinates(row)
}

func scanCoordinates(row pgx.Row) (coords user.Coordinates, err error) {
	var rawUserID int64
	err = row.Scan(&rawUserID, &coords.Latitude, &coords.Longitude, &coords.UpdatedAt)
	if err != nil {
		return coords, err
	}
	coords.UserID = user.ID(rawUserID)
	return coords, nil
}
