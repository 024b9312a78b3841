package calendar

type ConnectRequest struct {
	Provider          string `json:"provider" binding:"required,oneof=google outlook apple"`
	Email             string `json:"email" binding:"required,email"`
	SyncLeaveRequests *bool  `json:"sync_leave_requests"`
	SyncNotifications *bool  `json:"sync_notifications"`
}

type IntegrationResponse struct {
	ID                string  `json:"id"`
	Provider          string  `json:"provider"`
	Email             string  `json:"email"`
	IsEnabled         bool    `json:"is_enabled"`
	SyncLeaveRequests bool    `json:"sync_leave_requests"`
	SyncNotifications bool    `json:"sync_notifications"`
	LastSync          *string `json:"last_sync,omitempty"`
}
