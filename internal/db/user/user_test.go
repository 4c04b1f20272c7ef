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

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
	RESET_CODE    = "AB12CD"
)

var NOW time.Time = time.Date(2022, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	u, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		FirstName:    "Ivan",
		LastName:     "Petrov",
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestCreateSuccess() {
	u := suite.createUser()

	assert := suite.Require()
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal("Ivan", u.FirstName)
	assert.Equal("Petrov", u.LastName)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.False(u.PasswordResetCode.IsPresent)
	assert.Equal(uint(0), u.PasswordResetAttempts)
	assert.True(NOW.Equal(u.CreatedAt))
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createUser()

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash("other-hash"),
		CreatedAt:    NOW,
	})
	suite.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (suite *testSuite) TestGetByEmail() {
	created := suite.createUser()

	u, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	suite.Require().Nil(err)
	suite.Require().Equal(created.ID, u.ID)

	_, err = suite.repo.GetByEmail(context.Background(), c.Email("unknown@test.test"))
	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestGetByEmailWithLock() {
	ctx := context.Background()
	created := suite.createUser()
	assert := suite.Require()

	tx, err := suite.pool.Begin(ctx)
	assert.Nil(err)
	defer tx.Rollback(ctx)

	txRepo := NewPgxRepository(tx)
	u, err := txRepo.GetByEmailWithLock(ctx, c.Email(EMAIL))
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)

	_, err = txRepo.GetByEmailWithLock(ctx, c.Email("unknown@test.test"))
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestUpdate() {
	created := suite.createUser()

	u, err := suite.repo.Update(context.Background(), user.UpdateUserInput{
		ID:                created.ID,
		DoFirstNameUpdate: true,
		FirstName:         "Petr",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Petr", u.FirstName)
	assert.Equal("Petrov", u.LastName)
}

func (suite *testSuite) TestPasswordResetCodeLifecycle() {
	ctx := context.Background()
	created := suite.createUser()
	assert := suite.Require()

	assert.Nil(suite.repo.SetPasswordResetCode(ctx, created.ID, user.ResetCode(RESET_CODE)))
	assert.Nil(suite.repo.IncrementPasswordResetAttempts(ctx, created.ID))
	assert.Nil(suite.repo.IncrementPasswordResetAttempts(ctx, created.ID))

	u, err := suite.repo.GetByID(ctx, created.ID)
	assert.Nil(err)
	assert.True(u.PasswordResetCode.IsPresent)
	assert.Equal(user.ResetCode(RESET_CODE), u.PasswordResetCode.Value)
	assert.Equal(uint(2), u.PasswordResetAttempts)

	// Issuing a new code zeroes the attempt counter.
	assert.Nil(suite.repo.SetPasswordResetCode(ctx, created.ID, user.ResetCode("ZZ99XX")))
	u, err = suite.repo.GetByID(ctx, created.ID)
	assert.Nil(err)
	assert.Equal(user.ResetCode("ZZ99XX"), u.PasswordResetCode.Value)
	assert.Equal(uint(0), u.PasswordResetAttempts)

	assert.Nil(suite.repo.ResetPassword(ctx, created.ID, user.PasswordHash("new-hash")))
	u, err = suite.repo.GetByID(ctx, created.ID)
	assert.Nil(err)
	assert.Equal(user.PasswordHash("new-hash"), u.PasswordHash)
	assert.False(u.PasswordResetCode.IsPresent)
	assert.Equal(uint(0), u.PasswordResetAttempts)
}

func (suite *testSuite) TestResetOpsForUnknownUser() {
	ctx := context.Background()
	assert := suite.Require()
	assert.ErrorIs(suite.repo.SetPasswordResetCode(ctx, 1234, "AB12CD"), user.ErrUserDoesNotExist)
	assert.ErrorIs(suite.repo.IncrementPasswordResetAttempts(ctx, 1234), user.ErrUserDoesNotExist)
	assert.ErrorIs(suite.repo.ResetPassword(ctx, 1234, "new-hash"), user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestDelete() {
	ctx := context.Background()
	created := suite.createUser()
	assert := suite.Require()

	assert.Nil(suite.repo.Delete(ctx, created.ID))
	_, err := suite.repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
	assert.ErrorIs(suite.repo.Delete(ctx, created.ID), user.ErrUserDoesNotExist)
}
