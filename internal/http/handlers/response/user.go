package response

import (
	"carshare/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.FirstName = du.FirstName
	u.LastName = du.LastName
	u.CreatedAt = du.CreatedAt
}

type Coordinates struct {
	UserID    int64     `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Coordinates) FromDomainCoordinates(dc user.Coordinates) {
	c.UserID = int64(dc.UserID)
	c.Latitude = dc.Latitude
	c.Longitude = dc.Longitude
	c.UpdatedAt = dc.UpdatedAt
}
