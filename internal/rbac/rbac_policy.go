package rbac

import "go-hrms/internal/domain"

// staffRole groups what every signed-in user may do. It is never put on a
// token; employee and manager inherit it through roleInheritance.
const staffRole = "staff"

// rolePermissions is the static role table. Only employees file requests:
// a manager has no approver, so a manager's request could never be decided.
var rolePermissions = map[string][]domain.PermissionResponse{
	staffRole: {
		{Resource: "leave", Action: "read"},
		{Resource: "wfh", Action: "read"},
		{Resource: "balance", Action: "read"},
		{Resource: "notification", Action: "read"},
		{Resource: "assistant", Action: "use"},
		{Resource: "calendar", Action: "manage"},
		{Resource: "policy", Action: "read"},
		{Resource: "policy", Action: "vote"},
	},
	domain.RoleEmployee: {
		{Resource: "leave", Action: "create"},
		{Resource: "wfh", Action: "create"},
	},
	domain.RoleManager: {
		{Resource: "leave", Action: "decide"},
		{Resource: "wfh", Action: "decide"},
		{Resource: "team", Action: "read"},
		{Resource: "directory", Action: "read"},
		{Resource: "directory", Action: "create"},
		{Resource: "directory", Action: "repair"},
		{Resource: "return_to_work", Action: "read"},
	},
}

var roleInheritance = [][2]string{
	{domain.RoleEmployee, staffRole},
	{domain.RoleManager, staffRole},
}
