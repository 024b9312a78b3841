package directory

import "github.com/google/uuid"

type CreateUserRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Email      string  `json:"email" binding:"required,email"`
	Role       string  `json:"role" binding:"required,oneof=employee manager"`
	Department string  `json:"department" binding:"max=100"`
	ManagerID  *string `json:"manager_id" binding:"omitempty,uuid"`
}

// NewUser is the input shared by "add user" and signup.
type NewUser struct {
	Name         string
	Email        string
	Role         string
	Department   string
	ManagerID    *uuid.UUID
	PasswordHash string
}

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	ManagerID  *string `json:"manager_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type RepairResult struct {
	UsersRepaired     int   `json:"users_repaired"`
	RequestsRepointed int64 `json:"requests_repointed"`
}
