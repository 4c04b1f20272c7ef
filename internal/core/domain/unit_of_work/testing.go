package uow

import (
	"carshare/internal/core/domain/car"
	"carshare/internal/core/domain/review"
	"carshare/internal/core/domain/user"
	"context"
)

type FakeUnitOfWorkContext struct {
	UserRepository        *user.FakeUserRepository
	SessionRepository     *user.FakeSessionRepository
	CoordinatesRepository *user.FakeCoordinatesRepository
	CarRepository         *car.FakeRepository
	ReviewRepository      *review.FakeRepository
	WasRollbackCalled     bool
	WasCommitCalled       bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	sessionRepository *user.FakeSessionRepository,
	coordinatesRepository *user.FakeCoordinatesRepository,
	carRepository *car.FakeRepository,
	reviewRepository *review.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:        userRepository,
		SessionRepository:     sessionRepository,
		CoordinatesRepository: coordinatesRepository,
		CarRepository:         carRepository,
		ReviewRepository:      reviewRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) Coordinates() user.CoordinatesRepository {
	return c.CoordinatesRepository
}

func (c *FakeUnitOfWorkContext) Cars() car.Repository {
	return c.CarRepository
}

func (c *FakeUnitOfWorkContext) Reviews() review.Repository {
	return c.ReviewRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			userRepository,
			user.NewFakeSessionRepository(userRepository),
			user.NewFakeCoordinatesRepository(),
			car.NewFakeRepository(),
			review.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
