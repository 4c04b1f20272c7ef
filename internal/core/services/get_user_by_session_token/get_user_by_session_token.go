package getuserbysessiontoken

import (
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"carshare/internal/core/services/auth"
	"context"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User user.User
}

type service struct{}

func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	return Result{User: input.User}, nil
}
