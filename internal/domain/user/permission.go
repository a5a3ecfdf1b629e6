package user

type Permission string

const (
	// Self Management
	PermissionViewOwnRoster  Permission = "roster.view_own"
	PermissionViewOwnPayroll Permission = "payroll.view_own"

	// Staff Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Scheduling
	PermissionScheduleViewAll Permission = "schedule.view_all"
	PermissionScheduleManage  Permission = "schedule.manage"

	// Payroll
	PermissionPayrollViewAll Permission = "payroll.view_all"
	PermissionPayrollPay     Permission = "payroll.pay"

	// Locations
	PermissionLocationManage Permission = "location.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnRoster,
		PermissionViewOwnPayroll,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionScheduleViewAll,
		PermissionScheduleManage,
		PermissionPayrollViewAll,
		PermissionPayrollPay,
		PermissionLocationManage,
	},
	RoleManager: {
		PermissionViewOwnRoster,
		PermissionViewOwnPayroll,
		PermissionEmployeeViewAll,
		PermissionScheduleViewAll,
		PermissionScheduleManage,
		PermissionPayrollViewAll,
		PermissionPayrollPay,
	},
	RoleEmployee: {
		PermissionViewOwnRoster,
		PermissionViewOwnPayroll,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
