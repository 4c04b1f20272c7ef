package user

import (
	c "carshare/internal/core/domain/common"
	"carshare/internal/core/domain/user"
	"carshare/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type coordinatesTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	users    *PgxUserRepository
	repo     *PgxCoordinatesRepository
	userID   user.ID
	userTime time.Time
}

func (suite *coordinatesTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.users = NewPgxRepository(suite.pool)
	suite.repo = NewPgxCoordinatesRepository(suite.pool)
	suite.userTime = time.Date(2022, 6, 6, 15, 30, 30, 0, time.UTC)
}

func (suite *coordinatesTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *coordinatesTestSuite) SetupTest() {
	u, err := suite.users.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email("coords@test.test"),
		PasswordHash: user.PasswordHash("test-password-hash"),
		CreatedAt:    suite.userTime,
	})
	suite.Require().Nil(err)
	suite.userID = u.ID
}

func (suite *coordinatesTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxCoordinatesRepository(t *testing.T) {
	suite.Run(t, new(coordinatesTestSuite))
}

func (suite *coordinatesTestSuite) TestGetBeforeAnyUpdate() {
	_, err := suite.repo.GetByUserID(context.Background(), suite.userID)
	suite.Require().ErrorIs(err, user.ErrCoordinatesDoNotExist)
}

func (suite *coordinatesTestSuite) TestSetCreatesAndOverwrites() {
	ctx := context.Background()
	assert := suite.Require()

	first, err := suite.repo.Set(ctx, user.SetCoordinatesInput{
		UserID:    suite.userID,
		Latitude:  55.751244,
		Longitude: 37.618423,
		UpdatedAt: suite.userTime,
	})
	assert.Nil(err)
	assert.Equal(suite.userID, first.UserID)
	assert.Equal(55.751244, first.Latitude)
	assert.Equal(37.618423, first.Longitude)

	second, err := suite.repo.Set(ctx, user.SetCoordinatesInput{
		UserID:    suite.userID,
		Latitude:  -10,
		Longitude: 20,
		UpdatedAt: suite.userTime.Add(time.Hour),
	})
	assert.Nil(err)

	stored, err := suite.repo.GetByUserID(ctx, suite.userID)
	assert.Nil(err)
	assert.Equal(second.Latitude, stored.Latitude)
	assert.Equal(second.Longitude, stored.Longitude)
	assert.True(second.UpdatedAt.Equal(stored.UpdatedAt))
}

func (suite *coordinatesTestSuite) TestDeletedWithUser() {
	ctx := context.Background()
	_, err := suite.repo.Set(ctx, user.SetCoordinatesInput{
		UserID:    suite.userID,
		Latitude:  1,
		Longitude: 2,
		UpdatedAt: suite.userTime,
	})
	suite.Require().Nil(err)

	suite.Require().Nil(suite.users.Delete(ctx, suite.userID))
	_, err = suite.repo.GetByUserID(ctx, suite.userID)
	suite.Require().ErrorIs(err, user.ErrCoordinatesDoNotExist)
}
