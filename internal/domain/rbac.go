package domain

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

func IsValidRole(role string) bool {
	return role == RoleEmployee || role == RoleManager
}

type EnforceRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
