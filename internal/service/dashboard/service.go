package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/dashboard"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/user"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardServiceImpl struct {
	db            *database.DB
	dashboardRepo dashboard.DashboardRepository
	now           func() time.Time
}

func NewDashboardService(db *database.DB, dashboardRepo dashboard.DashboardRepository, now func() time.Time) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{
		db:            db,
		dashboardRepo: dashboardRepo,
		now:           now,
	}
}

// Overview builds the role-shaped dashboard payload. Employees get the
// navigation block only; managers and admins additionally get the staff
// summary, today's coverage per location, and the unpaid count for the
// current period.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.DashboardResponse, error) {
	role, err := roleFromContext(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	now := s.now().In(datekey.Location())
	period := datekey.Period(now.Year(), now.Month())

	resp := dashboard.DashboardResponse{
		Role:       string(role),
		Navigation: user.NavigationFor(role),
		Period:     period,
	}

	if role != user.RoleAdmin && role != user.RoleManager {
		return resp, nil
	}

	summary, err := s.dashboardRepo.StaffSummary(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	resp.StaffSummary = &summary

	coverage, err := s.dashboardRepo.CoverageByLocation(ctx, datekey.Today(now))
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	resp.TodayCoverage = coverage

	attendance, err := s.dashboardRepo.AttendanceSummary(ctx, period)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	resp.Attendance = &attendance

	unpaid, err := s.dashboardRepo.UnpaidEmployeeCount(ctx, period)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	resp.UnpaidEmployees = &unpaid

	return resp, nil
}

func roleFromContext(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	role, _ := claims["role"].(string)
	return user.Role(role), nil
}
