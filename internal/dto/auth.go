package dto

import "time"

// LoginRequest is the single-operator admin login payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed session token. The same token is also set
// as an HttpOnly cookie so browser dashboards need no extra wiring.
type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
