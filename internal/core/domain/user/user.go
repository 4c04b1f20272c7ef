package user

import (
	c "carshare/internal/core/domain/common"
	e "carshare/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type User struct {
	ID                    ID
	Email                 c.Email
	FirstName             string
	LastName              string
	PasswordHash          PasswordHash
	PasswordResetCode     c.Optional[ResetCode]
	PasswordResetAttempts uint
	CreatedAt             time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

const MinLatitude = -90.0
const MaxLatitude = 90.0
const MinLongitude = -180.0
const MaxLongitude = 180.0

// Coordinates is a user's last known geographic position, one record per
// account. Bounds are inclusive.
type Coordinates struct {
	UserID    ID
	Latitude  float64
	Longitude float64
	UpdatedAt time.Time
}

func (c Coordinates) Validate() error {
	err := &CoordinatesValidationError{}
	if c.Latitude < MinLatitude || c.Latitude > MaxLatitude {
		err.Fields = append(err.Fields, FieldError{
			Field: "latitude",
			Msg:   fmt.Sprintf("must be between %.0f and %.0f", MinLatitude, MaxLatitude),
		})
	}
	if c.Longitude < MinLongitude || c.Longitude > MaxLongitude {
		err.Fields = append(err.Fields, FieldError{
			Field: "longitude",
			Msg:   fmt.Sprintf("must be between %.0f and %.0f", MinLongitude, MaxLongitude),
		})
	}
	if len(err.Fields) > 0 {
		return err
	}
	return nil
}
