package model

import "time"

// User is an account that owns pets
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Nickname     string    `json:"nickname" bson:"nickname"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
