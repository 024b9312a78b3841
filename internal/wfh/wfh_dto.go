package wfh

type SubmitRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason" binding:"required,max=2000"`
}

type DecideRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approve reject"`
	Comments *string `json:"comments" binding:"omitempty,max=2000"`
}

type Response struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	ManagerID       *string `json:"manager_id,omitempty"`
	Date            string  `json:"date"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	ManagerComments *string `json:"manager_comments,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
