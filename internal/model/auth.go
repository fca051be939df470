package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims for an authenticated account
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
