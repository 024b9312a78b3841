package domain

const (
	LeaveTypeSick     = "sick"
	LeaveTypeCasual   = "casual"
	LeaveTypeVacation = "vacation"
)

var LeaveTypes = []string{LeaveTypeSick, LeaveTypeCasual, LeaveTypeVacation}

func IsValidLeaveType(t string) bool {
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeVacation:
		return true
	}
	return false
}
