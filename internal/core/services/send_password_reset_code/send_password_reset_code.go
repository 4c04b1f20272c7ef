package sendpasswordresetcode

import (
	c "carshare/internal/core/domain/common"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	uow "carshare/internal/core/domain/unit_of_work"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-code::" + string(i.Email)
}

type Result struct {
	User user.User
	Code user.ResetCode
}

type service struct {
	log                logging.Logger
	unitOfWork         uow.UnitOfWork
	resetCodeGenerator user.ResetCodeGenerator
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	resetCodeGenerator user.ResetCodeGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if resetCodeGenerator == nil {
		panic(e.NewNilArgumentError("resetCodeGenerator"))
	}
	return &service{
		log:                log,
		unitOfWork:         unitOfWork,
		resetCodeGenerator: resetCodeGenerator,
	}
}

// Run issues a fresh reset code for the account identified by email. The code
// is persisted together with a zeroed attempt counter before any delivery is
// attempted.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"User not found for password reset code sending.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	code := s.resetCodeGenerator.GenerateResetCode()
	if err := uow.Users().SetPasswordResetCode(ctx, u.ID, code); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset code has been issued.",
		logging.Entry("userID", u.ID),
	)
	return Result{User: u, Code: code}, nil
}
