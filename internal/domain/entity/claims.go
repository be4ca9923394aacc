package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity extracted from a verified access token.
type Claims struct {
	UserID string
	Email  string
	Name   string
	Role   UserRole
	jwt.RegisteredClaims
}
