package dto

import "github.com/SscSPs/receivables_app/internal/core/domain"

// CreateUserRequest defines the data needed to provision a user.
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     domain.Role `json:"role" binding:"required,oneof=admin user"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ToUserResponse converts a domain User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   string(user.Role),
	}
}
