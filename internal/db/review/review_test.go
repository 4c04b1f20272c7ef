package review

import (
	"carshare/internal/core/domain/car"
	c "carshare/internal/core/domain/common"
	"carshare/internal/core/domain/review"
	"carshare/internal/core/domain/user"
	"carshare/internal/db"
	dbcar "carshare/internal/db/car"
	dbuser "carshare/internal/db/user"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2022, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	repo   *PgxReviewRepository
	cars   *dbcar.PgxCarRepository
	users  *dbuser.PgxUserRepository
	user   user.User
	car    car.Car
	second car.Car
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
	suite.cars = dbcar.NewPgxRepository(suite.pool)
	suite.users = dbuser.NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) SetupTest() {
	ctx := context.Background()
	u, err := suite.users.Create(ctx, user.CreateUserInput{
		Email:        c.Email("review@test.test"),
		PasswordHash: user.PasswordHash("test-password-hash"),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	suite.user = u

	first, err := suite.cars.Create(ctx, car.CreateCarInput{
		Company:     "citydrive",
		Brand:       "Kia",
		Model:       "Rio",
		StateNumber: "А123ВС77",
		IsAvailable: true,
		CreatedAt:   NOW,
	})
	suite.Require().Nil(err)
	suite.car = first

	second, err := suite.cars.Create(ctx, car.CreateCarInput{
		Company:     "delimobil",
		Brand:       "VW",
		Model:       "Polo",
		StateNumber: "В456ЕК99",
		IsAvailable: true,
		CreatedAt:   NOW,
	})
	suite.Require().Nil(err)
	suite.second = second
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxReviewRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateAndList() {
	ctx := context.Background()
	rv, err := suite.repo.Create(ctx, review.CreateReviewInput{
		CarID:     suite.car.ID,
		AuthorID:  suite.user.ID,
		Rating:    4,
		Text:      "Good car.",
		CreatedAt: NOW,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(review.ID(0), rv.ID)

	reviews, err := suite.repo.ListByCarID(ctx, suite.car.ID)
	assert.Nil(err)
	assert.Len(reviews, 1)
	assert.Equal(rv.ID, reviews[0].ID)

	reviews, err = suite.repo.ListByCarID(ctx, suite.second.ID)
	assert.Nil(err)
	assert.Len(reviews, 0)
}

func (suite *testSuite) TestOneReviewPerCarPerAuthor() {
	ctx := context.Background()
	input := review.CreateReviewInput{
		CarID:     suite.car.ID,
		AuthorID:  suite.user.ID,
		Rating:    4,
		CreatedAt: NOW,
	}
	_, err := suite.repo.Create(ctx, input)
	suite.Require().Nil(err)

	_, err = suite.repo.Create(ctx, input)
	suite.Require().ErrorIs(err, review.ErrReviewAlreadyLeft)

	// A different car is fine.
	input.CarID = suite.second.ID
	_, err = suite.repo.Create(ctx, input)
	suite.Require().Nil(err)
}

func (suite *testSuite) TestRatingAggregatedOnCar() {
	ctx := context.Background()
	assert := suite.Require()

	other, err := suite.users.Create(ctx, user.CreateUserInput{
		Email:        c.Email("other@test.test"),
		PasswordHash: user.PasswordHash("test-password-hash"),
		CreatedAt:    NOW,
	})
	assert.Nil(err)

	_, err = suite.repo.Create(ctx, review.CreateReviewInput{
		CarID:     suite.car.ID,
		AuthorID:  suite.user.ID,
		Rating:    5,
		CreatedAt: NOW,
	})
	assert.Nil(err)
	_, err = suite.repo.Create(ctx, review.CreateReviewInput{
		CarID:     suite.car.ID,
		AuthorID:  other.ID,
		Rating:    2,
		CreatedAt: NOW,
	})
	assert.Nil(err)

	c, err := suite.cars.GetByID(ctx, suite.car.ID)
	assert.Nil(err)
	assert.Equal(3.5, c.Rating)
}
