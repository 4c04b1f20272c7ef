package review

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/review"
	"carshare/internal/core/domain/user"
	"carshare/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const CAR_AUTHOR_CONSTRAINT_NAME = "review_car_author_idx"

type PgxReviewRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxReviewRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReviewRepository{db: db}
}

func (r *PgxReviewRepository) Create(ctx context.Context, input review.CreateReviewInput) (rv review.Review, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO review (car_id, author_id, rating, text, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		int64(input.CarID),
		int64(input.AuthorID),
		input.Rating,
		input.Text,
		input.CreatedAt,
	)
	var id int64
	err = row.Scan(&id)

	var errUniqueConstraint *pgconn.PgError
	if errors.As(err, &errUniqueConstraint) {
		if errUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			errUniqueConstraint.ConstraintName == CAR_AUTHOR_CONSTRAINT_NAME {
			return rv, review.ErrReviewAlreadyLeft
		}
	}

	if err != nil {
		return rv, err
	}
	rv = review.Review{
		ID:        review.ID(id),
		CarID:     input.CarID,
		AuthorID:  input.AuthorID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: input.CreatedAt,
	}
	return rv, nil
}

func (r *PgxReviewRepository) ListByCarID(ctx context.Context, carID car.ID) ([]review.Review, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, car_id, author_id, rating, text, created_at
		 FROM review WHERE car_id = $1 ORDER BY created_at DESC, id DESC`,
		int64(carID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]review.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func scanReview(row pgx.Row) (rv review.Review, err error) {
	var id, carID, authorID int64
	err = row.Scan(&id, &carID, &authorID, &rv.Rating, &rv.Text, &rv.CreatedAt)
	if err != nil {
		return rv, err
	}
	rv.ID = review.ID(id)
	rv.CarID = car.ID(carID)
	rv.AuthorID = user.ID(authorID)
	return rv, nil
}
