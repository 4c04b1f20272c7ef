package createreview

import (
	"carshare/internal/core/domain/car"
	c "carshare/internal/core/domain/common"
	"carshare/internal/core/domain/logging"
	"carshare/internal/core/domain/review"
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
	Car        car.Car
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		func() time.Time { return NOW },
	)

	ctx := context.Background()
	u, err := suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Email:     c.Email("test@test.test"),
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
	suite.User = u

	cr, err := suite.UnitOfWork.Context.CarRepository.Create(ctx, car.CreateCarInput{
		Company:     "citydrive",
		Brand:       "Kia",
		Model:       "Rio",
		StateNumber: "А123ВС77",
		IsAvailable: true,
		CreatedAt:   NOW,
	})
	suite.Require().Nil(err)
	suite.Car = cr
}

func TestCreateReviewService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		User:   suite.User,
		CarID:  suite.Car.ID,
		Rating: 5,
		Text:   "Clean car, smooth ride.",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(suite.Car.ID, result.Review.CarID)
	assert.Equal(suite.User.ID, result.Review.AuthorID)
	assert.Equal(5, result.Review.Rating)
	assert.Equal(NOW, result.Review.CreatedAt)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestCarDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{
		User:   suite.User,
		CarID:  suite.Car.ID + 1,
		Rating: 4,
	})

	suite.Require().True(errors.Is(err, car.ErrCarDoesNotExist))
	suite.Require().False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestOnlyOneReviewPerCar() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{
		User:   suite.User,
		CarID:  suite.Car.ID,
		Rating: 4,
	})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{
		User:   suite.User,
		CarID:  suite.Car.ID,
		Rating: 2,
	})

	suite.Require().True(errors.Is(err, review.ErrReviewAlreadyLeft))
}

func (suite *testSuite) TestRatingOutOfBounds() {
	for _, rating := range []int{review.MinRating - 1, review.MaxRating + 1, 0, 100} {
		_, err := suite.Service.Run(context.Background(), Input{
			User:   suite.User,
			CarID:  suite.Car.ID,
			Rating: rating,
		})

		suite.Require().True(errors.Is(err, review.ErrInvalidRating))
	}
	suite.Require().False(suite.UnitOfWork.Context.WasCommitCalled)
}
