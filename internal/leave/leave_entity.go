package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveRequest snapshots the employee name and manager at submission; later
// directory edits do not rewrite it (only the manager repair sweep does).
type LeaveRequest struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`
	EmployeeName string     `gorm:"type:varchar(255);not null"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index:idx_leave_requests_manager_status"`

	LeaveType string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_end_date"`
	Days      int       `gorm:"type:int;not null"`
	Reason    string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_manager_status"`
	DecidedBy       *uuid.UUID `gorm:"type:uuid"`
	ManagerComments *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (l LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}
