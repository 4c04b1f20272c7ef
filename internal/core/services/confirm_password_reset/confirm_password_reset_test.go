package confirmpasswordreset

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

const (
	EMAIL              = c.Email("test@test.test")
	RESET_CODE         = user.ResetCode("ABC123")
	NEW_PASSWORD       = user.RawPassword("new-password-1")
	MAX_RESET_ATTEMPTS = uint(3)
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	PasswordPolicy *user.FakePasswordPolicy
	Service        services.Service[Input, Result]
	User           user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.PasswordPolicy = user.NewFakePasswordPolicy()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		suite.PasswordPolicy,
		MAX_RESET_ATTEMPTS,
	)

	ctx := context.Background()
	hash, _ := suite.PasswordHasher.HashPassword("old-password-1")
	u, err := suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	err = suite.UnitOfWork.Context.UserRepository.SetPasswordResetCode(ctx, u.ID, RESET_CODE)
	suite.Require().Nil(err)
	suite.User = u
}

func TestConfirmPasswordResetService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) getUser() user.User {
	u, err := suite.UnitOfWork.Context.UserRepository.GetByID(context.Background(), suite.User.ID)
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{
		Email:       EMAIL,
		Code:        RESET_CODE,
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	u := suite.getUser()
	assert.False(u.PasswordResetCode.IsPresent)
	assert.Equal(uint(0), u.PasswordResetAttempts)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, u.PasswordHash))
}

func (suite *testSuite) TestUserDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{
		Email:       c.Email("unknown@test.test"),
		Code:        RESET_CODE,
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestInvalidCodeIncrementsAttempts() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{
		Email:       EMAIL,
		Code:        user.ResetCode("WRONG1"),
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	var errInvalidCode *user.InvalidResetCodeError
	assert.True(errors.As(err, &errInvalidCode))
	assert.Equal(MAX_RESET_ATTEMPTS, errInvalidCode.RemainingAttempts)

	u := suite.getUser()
	assert.Equal(uint(1), u.PasswordResetAttempts)
	assert.True(u.PasswordResetCode.IsPresent)
	// The increment must be persisted even though the call failed.
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestEachWrongAttemptIncrementsByOne() {
	ctx := context.Background()
	for i := uint(0); i < MAX_RESET_ATTEMPTS; i++ {
		_, err := suite.Service.Run(ctx, Input{
			Email:       EMAIL,
			Code:        user.ResetCode("WRONG1"),
			NewPassword: NEW_PASSWORD,
		})

		var errInvalidCode *user.InvalidResetCodeError
		suite.Require().True(errors.As(err, &errInvalidCode))
		suite.Require().Equal(MAX_RESET_ATTEMPTS-i, errInvalidCode.RemainingAttempts)
		suite.Require().Equal(i+1, suite.getUser().PasswordResetAttempts)
	}
}

func (suite *testSuite) TestAttemptsExceeded() {
	ctx := context.Background()
	for i := uint(0); i < MAX_RESET_ATTEMPTS; i++ {
		suite.Service.Run(ctx, Input{
			Email:       EMAIL,
			Code:        user.ResetCode("WRONG1"),
			NewPassword: NEW_PASSWORD,
		})
	}

	// Even the correct code must be rejected once the budget is spent.
	_, err := suite.Service.Run(ctx, Input{
		Email:       EMAIL,
		Code:        RESET_CODE,
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrResetAttemptsExceeded))
	assert.Equal(MAX_RESET_ATTEMPTS, suite.getUser().PasswordResetAttempts)
}

func (suite *testSuite) TestSuccessAfterWrongAttempts() {
	ctx := context.Background()
	for i := uint(0); i < MAX_RESET_ATTEMPTS-1; i++ {
		suite.Service.Run(ctx, Input{
			Email:       EMAIL,
			Code:        user.ResetCode("WRONG1"),
			NewPassword: NEW_PASSWORD,
		})
	}

	_, err := suite.Service.Run(ctx, Input{
		Email:       EMAIL,
		Code:        RESET_CODE,
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	u := suite.getUser()
	assert.Equal(uint(0), u.PasswordResetAttempts)
	assert.False(u.PasswordResetCode.IsPresent)
}

func (suite *testSuite) TestWeakPasswordNoStateChange() {
	suite.PasswordPolicy.Violations = []string{"password is too short"}

	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{
		Email:       EMAIL,
		Code:        RESET_CODE,
		NewPassword: user.RawPassword("short"),
	})

	assert := suite.Require()
	var errPolicy *user.PasswordPolicyError
	assert.True(errors.As(err, &errPolicy))
	assert.Equal([]string{"password is too short"}, errPolicy.Violations)

	u := suite.getUser()
	assert.True(u.PasswordResetCode.IsPresent)
	assert.Equal(uint(0), u.PasswordResetAttempts)
	assert.Equal(suite.User.PasswordHash, u.PasswordHash)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestNoCodeIssuedCountsAsInvalid() {
	ctx := context.Background()
	hash, _ := suite.PasswordHasher.HashPassword("old-password-2")
	u, err := suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Email:        c.Email("other@test.test"),
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{
		Email:       u.Email,
		Code:        RESET_CODE,
		NewPassword: NEW_PASSWORD,
	})

	var errInvalidCode *user.InvalidResetCodeError
	suite.Require().True(errors.As(err, &errInvalidCode))
}
