package auth

import "go-hrms/internal/directory"

type SignupRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=employee manager"`
	Department string `json:"department" binding:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User        directory.UserResponse `json:"user"`
	AccessToken string                 `json:"access_token"`
	ExpiresAt   string                 `json:"expires_at"`
}
