package dashboard

import "github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/user"

// StaffSummary feeds the headcount cards at the top of the admin dashboard.
type StaffSummary struct {
	TotalEmployees    int64  `json:"total_employees"`
	ActiveEmployees   int64  `json:"active_employees"`
	InactiveEmployees int64  `json:"inactive_employees"`
	UpdatedAt         string `json:"updated_at"`
}

// LocationCoverage is today's shift coverage for one restaurant.
type LocationCoverage struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Morning      int64  `json:"morning"`
	Evening      int64  `json:"evening"`
	Double       int64  `json:"double"`
	Rest         int64  `json:"rest"`
	Date         string `json:"date"` // YYYY-MM-DD
}

// AttendanceSummary aggregates the month's clock punches.
type AttendanceSummary struct {
	Period        string `json:"period"` // YYYY-MM
	TotalPunches  int64  `json:"total_punches"`
	ActiveWorkers int64  `json:"active_workers"` // distinct employees who clocked in
}

// DashboardResponse is shaped by role: employees only receive the navigation
// block, managers and admins get the management widgets as well.
type DashboardResponse struct {
	Role            string             `json:"role"`
	Navigation      []user.NavItem     `json:"navigation"`
	StaffSummary    *StaffSummary      `json:"staff_summary,omitempty"`
	TodayCoverage   []LocationCoverage `json:"today_coverage,omitempty"`
	Attendance      *AttendanceSummary `json:"attendance,omitempty"`
	UnpaidEmployees *int64             `json:"unpaid_employees,omitempty"`
	Period          string             `json:"period"` // YYYY-MM
}
