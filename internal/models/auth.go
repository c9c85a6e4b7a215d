package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload for an admin session token. There is a
// single operator role, so the claims only carry the registered set plus a
// role marker for forward compatibility.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
