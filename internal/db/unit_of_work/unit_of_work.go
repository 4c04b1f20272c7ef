package uow

import (
	"carshare/internal/core/domain/car"
	"carshare/internal/core/domain/review"
	uow "carshare/internal/core/domain/unit_of_work"
	"carshare/internal/core/domain/user"
	dbcar "carshare/internal/db/car"
	dbreview "carshare/internal/db/review"
	dbuser "carshare/internal/db/user"
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{
		tx: tx,
	}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Users() user.UserRepository {
	return dbuser.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Sessions() user.SessionRepository {
	return dbuser.NewPgxSessionRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Coordinates() user.CoordinatesRepository {
	return dbuser.NewPgxCoordinatesRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Cars() car.Repository {
	return dbcar.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Reviews() review.Repository {
	return dbreview.NewPgxRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
