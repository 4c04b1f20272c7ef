package uow

import (
	"carshare/internal/core/domain/car"
	"carshare/internal/core/domain/review"
	"carshare/internal/core/domain/user"
	"context"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	Coordinates() user.CoordinatesRepository
	Cars() car.Repository
	Reviews() review.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
