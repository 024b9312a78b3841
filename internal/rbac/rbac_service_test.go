package rbac_test

import (
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	svc, err := rbac.NewService(enforcer, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{domain.RoleEmployee, "leave", "create", true},
		{domain.RoleEmployee, "balance", "read", true},
		{domain.RoleEmployee, "leave", "decide", false},
		{domain.RoleEmployee, "directory", "repair", false},
		{domain.RoleManager, "leave", "decide", true},
		{domain.RoleManager, "leave", "create", false},
		{domain.RoleManager, "leave", "read", true},
		{domain.RoleEmployee, "wfh", "create", true},
		{domain.RoleManager, "wfh", "create", false},
		{domain.RoleManager, "wfh", "decide", true},
		{domain.RoleManager, "team", "read", true},
		{domain.RoleManager, "payroll", "read", false},
		{"admin", "leave", "read", false},
	}
	for _, tc := range cases {
		t.Run(tc.role+" "+tc.resource+":"+tc.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{UserID: "u", Role: tc.role, Resource: tc.resource, Action: tc.action})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}
}

func TestRBACService_PermissionsFor(t *testing.T) {
	svc := newService(t)

	employee, err := svc.PermissionsFor(domain.RoleEmployee)
	require.NoError(t, err)
	manager, err := svc.PermissionsFor(domain.RoleManager)
	require.NoError(t, err)

	assert.Len(t, employee, 10)
	assert.Len(t, manager, 15)
	assert.Contains(t, employee, domain.PermissionResponse{Resource: "leave", Action: "create"})
	assert.NotContains(t, manager, domain.PermissionResponse{Resource: "leave", Action: "create"})
	assert.Contains(t, manager, domain.PermissionResponse{Resource: "policy", Action: "read"})
	assert.NotContains(t, employee, domain.PermissionResponse{Resource: "leave", Action: "decide"})

	none, err := svc.PermissionsFor("staff")
	require.NoError(t, err)
	assert.Empty(t, none)

	none, err = svc.PermissionsFor("guest")
	require.NoError(t, err)
	assert.Empty(t, none)
}
