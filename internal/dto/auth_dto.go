package dto

import "time"

// LoginRequest captures email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
}

// SeedAccount describes a test account created by the seed endpoint.
type SeedAccount struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedResponse lists the provisioned test accounts.
type SeedResponse struct {
	Accounts []SeedAccount `json:"accounts"`
}
