package createreview

import (
	"carshare/internal/core/domain/car"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/domain/review"
	uow "carshare/internal/core/domain/unit_of_work"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"carshare/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	User   user.User
	CarID  car.ID
	Rating int
	Text   string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Review review.Review
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Rating < review.MinRating || input.Rating > review.MaxRating {
		return result, review.ErrInvalidRating
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Cars().GetByID(ctx, input.CarID); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, car.ErrCarDoesNotExist) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("carID", input.CarID))
		return result, err
	}

	created, err := uow.Reviews().Create(ctx, review.CreateReviewInput{
		CarID:     input.CarID,
		AuthorID:  input.User.ID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, review.ErrReviewAlreadyLeft) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("carID", input.CarID))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("carID", input.CarID))
		return result, err
	}

	s.log.Info(
		ctx,
		"New review has been created.",
		logging.Entry("reviewID", created.ID),
		logging.Entry("carID", input.CarID),
	)
	return Result{Review: created}, nil
}
