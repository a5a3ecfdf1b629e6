package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationFor_RoleSets(t *testing.T) {
	t.Parallel()

	admin := NavigationFor(RoleAdmin)
	manager := NavigationFor(RoleManager)
	employee := NavigationFor(RoleEmployee)

	assert.Len(t, admin, 5)
	assert.Len(t, manager, 4)
	assert.Len(t, employee, 2)

	// Only admins see location management.
	for _, item := range manager {
		assert.NotEqual(t, "/locations", item.Path)
	}
}

func TestNavigationFor_UnknownRoleGetsEmployeeSet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NavigationFor(RoleEmployee), NavigationFor(Role("intern")))
}

func TestNavigationFor_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := NavigationFor(RoleAdmin)
	first[0].Label = "mutated"
	assert.Equal(t, "Dashboard", NavigationFor(RoleAdmin)[0].Label)
}

func TestHasPermission(t *testing.T) {
	t.Parallel()

	assert.True(t, HasPermission(RoleAdmin, PermissionLocationManage))
	assert.True(t, HasPermission(RoleManager, PermissionPayrollPay))
	assert.False(t, HasPermission(RoleManager, PermissionLocationManage))
	assert.False(t, HasPermission(RoleEmployee, PermissionEmployeeViewAll))
	assert.True(t, HasPermission(RoleEmployee, PermissionViewOwnRoster))
}
