package setusercoordinates

import (
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	uow "carshare/internal/core/domain/unit_of_work"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"carshare/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	User         user.User
	TargetUserID user.ID
	Latitude     float64
	Longitude    float64
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Coordinates user.Coordinates
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

// Run stores the acting user's current position. Only the account owner may
// update their coordinates; the record is created on first use and
// overwritten afterwards, all within one transaction.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.User.ID != input.TargetUserID {
		s.log.Info(
			ctx,
			"User tried to update coordinates of another account.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("targetUserID", input.TargetUserID),
		)
		return result, user.ErrPermissionDenied
	}

	coords := user.Coordinates{
		UserID:    input.TargetUserID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := coords.Validate(); err != nil {
		return result, err
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

	stored, err := uow.Coordinates().Set(ctx, user.SetCoordinatesInput{
		UserID:    input.TargetUserID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		UpdatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.TargetUserID))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.TargetUserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"User coordinates have been updated.",
		logging.Entry("userID", input.TargetUserID),
	)
	return Result{Coordinates: stored}, nil
}
