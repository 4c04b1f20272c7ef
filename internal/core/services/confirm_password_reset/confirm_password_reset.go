package confirmpasswordreset

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
	Email       c.Email
	Code        user.ResetCode
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log              logging.Logger
	unitOfWork       uow.UnitOfWork
	passwordHasher   user.PasswordHasher
	passwordPolicy   user.PasswordPolicy
	maxResetAttempts uint
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	passwordPolicy user.PasswordPolicy,
	maxResetAttempts uint,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if passwordPolicy == nil {
		panic(e.NewNilArgumentError("passwordPolicy"))
	}
	if maxResetAttempts == 0 {
		panic(e.NewInvalidStateError("maxResetAttempts must be positive"))
	}
	return &service{
		log:              log,
		unitOfWork:       unitOfWork,
		passwordHasher:   passwordHasher,
		passwordPolicy:   passwordPolicy,
		maxResetAttempts: maxResetAttempts,
	}
}

// Run verifies the emailed reset code and replaces the account password.
// Wrong-code attempts are counted against the issued code; the counter
// increment is committed even though the call fails, so guessing is bounded
// by maxResetAttempts per issuance.
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

	u, err := uow.Users().GetByEmailWithLock(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"User not found for password reset confirmation.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	if u.PasswordResetAttempts >= s.maxResetAttempts {
		s.log.Warning(
			ctx,
			"Password reset attempts exceeded.",
			logging.Entry("userID", u.ID),
			logging.Entry("attempts", u.PasswordResetAttempts),
		)
		return result, user.ErrResetAttemptsExceeded
	}

	if !u.PasswordResetCode.IsPresent || u.PasswordResetCode.Value != input.Code {
		remaining := s.maxResetAttempts - u.PasswordResetAttempts
		if err := uow.Users().IncrementPasswordResetAttempts(ctx, u.ID); err != nil {
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
			"Invalid password reset code.",
			logging.Entry("userID", u.ID),
			logging.Entry("remainingAttempts", remaining),
		)
		return result, &user.InvalidResetCodeError{RemainingAttempts: remaining}
	}

	if err := s.passwordPolicy.ValidatePassword(input.NewPassword, u); err != nil {
		s.log.Info(
			ctx,
			"New password rejected by password policy.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	if err := uow.Users().ResetPassword(ctx, u.ID, newPasswordHash); err != nil {
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
		"Password has been successfully reset.",
		logging.Entry("userID", u.ID),
	)
	return result, nil
}
