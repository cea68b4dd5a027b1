package models

import "time"

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	ProfilePicture *string   `json:"profile_picture"`
	Location       *string   `json:"location"`
	Timezone       *string   `json:"timezone"`
	Bio            *string   `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
}

// DisplayName joins first and last name, falling back to the username.
func (u *User) DisplayName() string {
	name := ""
	if u.FirstName != nil {
		name = *u.FirstName
	}
	if u.LastName != nil && *u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += *u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}

type RatingSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}
