package sendpasswordresetcode

import (
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"context"
	"errors"
)

type serviceWithResetCodeSending struct {
	log    logging.Logger
	sender user.ResetCodeSender
	inner  services.Service[Input, Result]
}

func NewWithResetCodeSending(
	log logging.Logger,
	sender user.ResetCodeSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithResetCodeSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithResetCodeSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending password reset code.", logging.Entry("err", err))
		return result, err
	}

	// The code is already persisted at this point, delivery is best-effort.
	err = s.sender.SendResetCode(ctx, result.User, result.Code)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset code.",
			logging.Entry("userID", result.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset code has been sent to the user.",
		logging.Entry("userID", result.User.ID),
	)
	return result, err
}
