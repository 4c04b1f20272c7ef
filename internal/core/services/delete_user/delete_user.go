package deleteuser

import (
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	uow "carshare/internal/core/domain/unit_of_work"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"carshare/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	User         user.User
	TargetUserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
	}
}

// Run deletes the acting user's own account. Sessions, coordinates and
// reviews go with it via foreign key cascade.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.User.ID != input.TargetUserID {
		s.log.Info(
			ctx,
			"User tried to delete another account.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("targetUserID", input.TargetUserID),
		)
		return result, user.ErrPermissionDenied
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

	if err := uow.Users().Delete(ctx, input.TargetUserID); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if errors.Is(err, user.ErrUserDoesNotExist) {
			return result, err
		}
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
		"User account has been deleted.",
		logging.Entry("userID", input.TargetUserID),
	)
	return result, nil
}
