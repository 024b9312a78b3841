package wfh

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

// Request is one day of working from home. Name and manager are snapshots
// taken at submission.
type Request struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_wfh_requests_employee_date"`
	EmployeeName string     `gorm:"type:varchar(255);not null"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index:idx_wfh_requests_manager_status"`
	Date         time.Time  `gorm:"type:date;not null;index:idx_wfh_requests_employee_date"`
	Reason       string     `gorm:"type:text;not null"`

	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_wfh_requests_manager_status"`
	DecidedBy       *uuid.UUID `gorm:"type:uuid"`
	DecidedAt       *time.Time
	ManagerComments *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Request) TableName() string {
	return "wfh_requests"
}
