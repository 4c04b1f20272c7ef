package updateuser

import (
	c "carshare/internal/core/domain/common"
	e "carshare/internal/core/domain/errors"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"carshare/internal/core/services/auth"
	"context"
)

type Input struct {
	UserID    user.ID
	FirstName c.Optional[string]
	LastName  c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updatedUser, err := s.userRepository.Update(
		ctx,
		user.UpdateUserInput{
			ID:                input.UserID,
			DoFirstNameUpdate: input.FirstName.IsPresent,
			FirstName:         input.FirstName.Value,
			DoLastNameUpdate:  input.LastName.IsPresent,
			LastName:          input.LastName.Value,
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully updated.",
		logging.Entry("userID", updatedUser.ID),
	)
	result.User = updatedUser
	return result, nil
}
