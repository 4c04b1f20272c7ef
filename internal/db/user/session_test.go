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

const SESSION_TOKEN = "test-session-token"

type sessionTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	users *PgxUserRepository
	repo  *PgxSessionRepository
	user  user.User
}

func (suite *sessionTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.users = NewPgxRepository(suite.pool)
	suite.repo = NewPgxSessionRepository(suite.pool)
}

func (suite *sessionTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *sessionTestSuite) SetupTest() {
	u, err := suite.users.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email("session@test.test"),
		PasswordHash: user.PasswordHash("test-password-hash"),
		CreatedAt:    time.Date(2022, 6, 6, 15, 30, 30, 0, time.UTC),
	})
	suite.Require().Nil(err)
	suite.user = u
}

func (suite *sessionTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func (suite *sessionTestSuite) TestCreateAndGetUser() {
	ctx := context.Background()
	err := suite.repo.Create(ctx, user.CreateSessionInput{
		UserID:    suite.user.ID,
		Token:     user.SessionToken(SESSION_TOKEN),
		CreatedAt: suite.user.CreatedAt,
	})
	suite.Require().Nil(err)

	u, err := suite.repo.GetUserByToken(ctx, user.SessionToken(SESSION_TOKEN))
	suite.Require().Nil(err)
	suite.Require().Equal(suite.user.ID, u.ID)
	suite.Require().Equal(suite.user.Email, u.Email)
}

func (suite *sessionTestSuite) TestGetUserByUnknownToken() {
	_, err := suite.repo.GetUserByToken(context.Background(), user.SessionToken("unknown"))
	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *sessionTestSuite) TestDelete() {
	ctx := context.Background()
	err := suite.repo.Create(ctx, user.CreateSessionInput{
		UserID:    suite.user.ID,
		Token:     user.SessionToken(SESSION_TOKEN),
		CreatedAt: suite.user.CreatedAt,
	})
	suite.Require().Nil(err)

	userID, err := suite.repo.Delete(ctx, user.SessionToken(SESSION_TOKEN))
	suite.Require().Nil(err)
	suite.Require().Equal(suite.user.ID, userID)

	_, err = suite.repo.Delete(ctx, user.SessionToken(SESSION_TOKEN))
	suite.Require().ErrorIs(err, user.ErrSessionDoesNotExist)
}
