package directory

import (
	"time"

	"go-hrms/internal/domain"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name         string     `gorm:"column:name;type:varchar(255);not null"`
	Email        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Role         string     `gorm:"column:role;type:varchar(20);not null;index:idx_users_role_created"`
	Department   string     `gorm:"column:department;type:varchar(100)"`
	ManagerID    *uuid.UUID `gorm:"column:manager_id;type:uuid;index"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255)"`
	CreatedAt    time.Time  `gorm:"column:created_at;index:idx_users_role_created"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsManager() bool {
	return u.Role == domain.RoleManager
}
