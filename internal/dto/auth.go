package dto

import "time"

// LoginRequest holds the credentials posted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CurrentUserResponse wraps the authenticated user.
type CurrentUserResponse struct {
	User UserResponse `json:"user"`
}
