package models

import "time"

type User struct {
	ID           int64     `json:"id" example:"1"`                    // User ID
	Username     string    `json:"username" example:"karim"`          // Login name
	Email        string    `json:"email" example:"karim@example.com"` // Optional email
	FirstName    string    `json:"first_name" example:"Karim"`
	LastName     string    `json:"last_name" example:"Uddin"`
	PasswordHash string    `json:"-"`
	DateJoined   time.Time `json:"date_joined"`
}

// UserInfo is the public part of a user returned by the auth endpoints.
type UserInfo struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"karim"`
	Email    string `json:"email" example:"karim@example.com"`
}

func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, Email: u.Email}
}
