package models

import "time"

// Profile is a user's display profile. user_id is the identity from the auth
// token; watchlist rows reference it.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Birthdate string    `json:"birthdate,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProfileRequest is the request body for creating a profile.
type CreateProfileRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Birthdate string `json:"birthdate"`
}
