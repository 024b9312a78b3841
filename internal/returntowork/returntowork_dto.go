package returntowork

type NoticeResponse struct {
	ID             string   `json:"id"`
	LeaveRequestID string   `json:"leave_request_id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name"`
	EmployeeEmail  string   `json:"employee_email"`
	ManagerName    string   `json:"manager_name"`
	LeaveType      string   `json:"leave_type"`
	ReturnDate     string   `json:"return_date"`
	NotifiedOn     string   `json:"notified_on"`
	Message        string   `json:"message"`
	SentTo         []string `json:"sent_to"`
}

// UpcomingReturn is an approved leave inside the look-ahead window that has
// not produced a notice yet.
type UpcomingReturn struct {
	LeaveRequestID string `json:"leave_request_id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	LeaveType      string `json:"leave_type"`
	ReturnDate     string `json:"return_date"`
}

type ScanResult struct {
	Candidates int `json:"candidates"`
	Created    int `json:"created"`
	Skipped    int `json:"skipped"`
}
