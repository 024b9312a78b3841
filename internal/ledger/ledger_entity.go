package ledger

import (
	"time"

	"go-hrms/internal/domain"

	"github.com/google/uuid"
)

const (
	EntryStateHeld     = "held"
	EntryStateSpent    = "spent"
	EntryStateReleased = "released"
)

// Balance is the per-user ledger. The available counters move, the allocated
// counters are fixed when the balance is opened.
type Balance struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`

	Sick     int `gorm:"column:sick;not null"`
	Casual   int `gorm:"column:casual;not null"`
	Vacation int `gorm:"column:vacation;not null"`

	AllocatedSick     int `gorm:"column:allocated_sick;not null"`
	AllocatedCasual   int `gorm:"column:allocated_casual;not null"`
	AllocatedVacation int `gorm:"column:allocated_vacation;not null"`

	Version   int64 `gorm:"column:version;not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Balance) TableName() string {
	return "leave_balances"
}

func (b *Balance) Available(leaveType string) int {
	switch leaveType {
	case domain.LeaveTypeSick:
		return b.Sick
	case domain.LeaveTypeCasual:
		return b.Casual
	case domain.LeaveTypeVacation:
		return b.Vacation
	}
	return 0
}

func (b *Balance) Allocated(leaveType string) int {
	switch leaveType {
	case domain.LeaveTypeSick:
		return b.AllocatedSick
	case domain.LeaveTypeCasual:
		return b.AllocatedCasual
	case domain.LeaveTypeVacation:
		return b.AllocatedVacation
	}
	return 0
}

func (b *Balance) setAvailable(leaveType string, days int) {
	switch leaveType {
	case domain.LeaveTypeSick:
		b.Sick = days
	case domain.LeaveTypeCasual:
		b.Casual = days
	case domain.LeaveTypeVacation:
		b.Vacation = days
	}
}

// Entry records one hold against a balance, keyed by the leave request that
// placed it.
type Entry struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	LeaveRequestID uuid.UUID `gorm:"column:leave_request_id;type:uuid;not null;uniqueIndex:uq_ledger_entry_leave_request"`
	LeaveType      string    `gorm:"column:leave_type;type:varchar(20);not null"`
	Days           int       `gorm:"column:days;not null"`
	State          string    `gorm:"column:state;type:varchar(20);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Entry) TableName() string {
	return "ledger_entries"
}
