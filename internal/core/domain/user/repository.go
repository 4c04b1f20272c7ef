package user

import (
	c "carshare/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID                ID
	DoFirstNameUpdate bool
	FirstName         string
	DoLastNameUpdate  bool
	LastName          string
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	// GetByEmailWithLock locks the user row for the rest of the surrounding
	// transaction. Only meaningful on a repository bound to a unit of work.
	GetByEmailWithLock(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	// SetPasswordResetCode stores a freshly issued reset code and zeroes the
	// attempt counter.
	SetPasswordResetCode(ctx context.Context, id ID, code ResetCode) error
	IncrementPasswordResetAttempts(ctx context.Context, id ID) error
	// ResetPassword stores the new hash, clears the reset code and zeroes the
	// attempt counter.
	ResetPassword(ctx context.Context, id ID, password PasswordHash) error
	Delete(ctx context.Context, id ID) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}

type SetCoordinatesInput struct {
	UserID    ID
	Latitude  float64
	Longitude float64
	UpdatedAt time.Time
}

type CoordinatesRepository interface {
	GetByUserID(ctx context.Context, userID ID) (Coordinates, error)
	// Set creates the coordinate record on first use and overwrites it on
	// every subsequent call (upsert keyed by user ID).
	Set(ctx context.Context, input SetCoordinatesInput) (Coordinates, error)
}
