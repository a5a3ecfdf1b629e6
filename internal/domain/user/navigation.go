package user

// NavItem is one entry of the dashboard's side navigation.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// Navigation item sets are plain data keyed by role. The shell renders
// whatever this returns; nothing is read from ambient session state.
var roleNavigation = map[Role][]NavItem{
	RoleAdmin: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Staff", Path: "/employees", Icon: "users"},
		{Label: "Schedules", Path: "/schedules", Icon: "calendar"},
		{Label: "Payroll", Path: "/payroll", Icon: "wallet"},
		{Label: "Locations", Path: "/locations", Icon: "map-pin"},
	},
	RoleManager: {
		{Label: "Dashboard", Path: "/dashboard", Icon: "home"},
		{Label: "Staff", Path: "/employees", Icon: "users"},
		{Label: "Schedules", Path: "/schedules", Icon: "calendar"},
		{Label: "Payroll", Path: "/payroll", Icon: "wallet"},
	},
	RoleEmployee: {
		{Label: "My Schedule", Path: "/my/schedule", Icon: "calendar"},
		{Label: "My Salary", Path: "/my/salary", Icon: "wallet"},
	},
}

// NavigationFor returns the navigation items for a role. Unknown roles get
// the employee set, the least privileged one.
func NavigationFor(role Role) []NavItem {
	items, ok := roleNavigation[role]
	if !ok {
		items = roleNavigation[RoleEmployee]
	}
	out := make([]NavItem, len(items))
	copy(out, items)
	return out
}
