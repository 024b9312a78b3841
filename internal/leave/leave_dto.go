package leave

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=sick casual vacation"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=2000"`
}

type DecideLeaveRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approve reject"`
	Comments *string `json:"comments" binding:"omitempty,max=2000"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	ManagerID       *string `json:"manager_id,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	ManagerComments *string `json:"manager_comments,omitempty"`
}

// TeamCalendarQuery filters a manager's team calendar. Month is YYYY-MM and
// defaults to the current month; "all" or empty matches every department
// or status.
type TeamCalendarQuery struct {
	Month      string `form:"month"`
	Department string `form:"department"`
	Status     string `form:"status"`
}

type TeamCalendarEvent struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	Department    string `json:"department"`
	LeaveType     string `json:"leave_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Days          int    `json:"days"`
	Status        string `json:"status"`
}

type TeamCalendarResponse struct {
	Month  string              `json:"month"`
	Events []TeamCalendarEvent `json:"events"`
}
