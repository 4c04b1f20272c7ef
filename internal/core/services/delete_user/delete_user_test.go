package deleteuser

import (
	c "carshare/internal/core/domain/common"
	"carshare/internal/core/domain/logging"
	uow "carshare/internal/core/domain/unit_of_work"
	"carshare/internal/core/domain/user"
	"carshare/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	Service    services.Service[Input, Result]
	User       user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Service = New(suite.Logger, suite.UnitOfWork)

	u, err := suite.UnitOfWork.Context.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:     c.Email("test@test.test"),
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
	suite.User = u
}

func TestDeleteUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{
		User:         suite.User,
		TargetUserID: suite.User.ID,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	_, err = suite.UnitOfWork.Context.UserRepository.GetByID(ctx, suite.User.ID)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestPermissionDenied() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{
		User:         suite.User,
		TargetUserID: suite.User.ID + 1,
	})

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrPermissionDenied))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)

	_, err = suite.UnitOfWork.Context.UserRepository.GetByID(ctx, suite.User.ID)
	assert.Nil(err)
}

func (suite *testSuite) TestUserAlreadyDeleted() {
	ctx := context.Background()
	err := suite.UnitOfWork.Context.UserRepository.Delete(ctx, suite.User.ID)
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{
		User:         suite.User,
		TargetUserID: suite.User.ID,
	})

	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
	suite.Require().False(suite.UnitOfWork.Context.WasCommitCalled)
}
