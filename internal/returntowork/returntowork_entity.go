package returntowork

import (
	"time"

	"github.com/google/uuid"
)

// Notice records that a manager was told about an upcoming return. There is
// at most one notice per leave request.
type Notice struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	LeaveRequestID uuid.UUID `gorm:"column:leave_request_id;type:uuid;not null;uniqueIndex:uq_return_to_work_request"`
	EmployeeID     uuid.UUID `gorm:"column:employee_id;type:uuid;not null"`
	EmployeeName   string    `gorm:"column:employee_name;type:varchar(255);not null"`
	EmployeeEmail  string    `gorm:"column:employee_email;type:varchar(255)"`
	ManagerID      uuid.UUID `gorm:"column:manager_id;type:uuid;not null;index"`
	ManagerName    string    `gorm:"column:manager_name;type:varchar(255)"`
	LeaveType      string    `gorm:"column:leave_type;type:varchar(20);not null"`
	ReturnDate     time.Time `gorm:"column:return_date;type:date;not null"`
	NotifiedOn     time.Time `gorm:"column:notified_on;type:date;not null"`
	Message        string    `gorm:"column:message;type:text;not null"`
	SentTo         []string  `gorm:"column:sent_to;type:text;serializer:json"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (Notice) TableName() string {
	return "return_to_work_notices"
}
