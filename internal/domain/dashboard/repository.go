package dashboard

import "context"

type DashboardRepository interface {
	StaffSummary(ctx context.Context) (StaffSummary, error)
	CoverageByLocation(ctx context.Context, dayKey string) ([]LocationCoverage, error)
	AttendanceSummary(ctx context.Context, period string) (AttendanceSummary, error)
	UnpaidEmployeeCount(ctx context.Context, period string) (int64, error)
}
