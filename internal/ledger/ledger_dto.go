package ledger

type LeaveTypeBalance struct {
	Available int `json:"available"`
	Allocated int `json:"allocated"`
}

type BalanceResponse struct {
	UserID   string           `json:"user_id"`
	Sick     LeaveTypeBalance `json:"sick"`
	Casual   LeaveTypeBalance `json:"casual"`
	Vacation LeaveTypeBalance `json:"vacation"`
	Version  int64            `json:"version"`
}

type EntryResponse struct {
	ID             string `json:"id"`
	LeaveRequestID string `json:"leave_request_id"`
	LeaveType      string `json:"leave_type"`
	Days           int    `json:"days"`
	State          string `json:"state"`
}
