package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/dashboard"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// StaffSummary implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) StaffSummary(ctx context.Context) (dashboard.StaffSummary, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'inactive') AS inactive
		FROM employees
		WHERE deleted_at IS NULL
	`

	var summary dashboard.StaffSummary
	err := q.QueryRow(ctx, query).Scan(
		&summary.TotalEmployees, &summary.ActiveEmployees, &summary.InactiveEmployees,
	)
	if err != nil {
		return dashboard.StaffSummary{}, fmt.Errorf("failed to get staff summary: %w", err)
	}

	summary.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return summary, nil
}

// CoverageByLocation implements dashboard.DashboardRepository. Locations with
// no entries for the day still appear, with zero counts.
func (d *dashboardRepositoryImpl) CoverageByLocation(ctx context.Context, dayKey string) ([]dashboard.LocationCoverage, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			l.id, l.name,
			COUNT(s.id) FILTER (WHERE s.shift = 'morning') AS morning,
			COUNT(s.id) FILTER (WHERE s.shift = 'evening') AS evening,
			COUNT(s.id) FILTER (WHERE s.shift = 'double') AS "double",
			COUNT(s.id) FILTER (WHERE s.shift = 'rest') AS rest
		FROM locations l
		LEFT JOIN schedule_entries s ON s.location_id = l.id AND s.date = $1
		GROUP BY l.id, l.name
		ORDER BY l.name
	`

	rows, err := q.Query(ctx, query, dayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get coverage for %s: %w", dayKey, err)
	}
	defer rows.Close()

	var coverage []dashboard.LocationCoverage
	for rows.Next() {
		cov := dashboard.LocationCoverage{Date: dayKey}
		err := rows.Scan(
			&cov.LocationID, &cov.LocationName,
			&cov.Morning, &cov.Evening, &cov.Double, &cov.Rest,
		)
		if err != nil {
			return nil, err
		}
		coverage = append(coverage, cov)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return coverage, nil
}

// AttendanceSummary implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) AttendanceSummary(ctx context.Context, period string) (dashboard.AttendanceSummary, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT COUNT(*), COUNT(DISTINCT employee_id)
		FROM time_entries
		WHERE left(date, 7) = $1
	`

	summary := dashboard.AttendanceSummary{Period: period}
	if err := q.QueryRow(ctx, query, period).Scan(&summary.TotalPunches, &summary.ActiveWorkers); err != nil {
		return dashboard.AttendanceSummary{}, fmt.Errorf("failed to get attendance summary for %s: %w", period, err)
	}

	return summary, nil
}

// UnpaidEmployeeCount implements dashboard.DashboardRepository. Active
// employees with no paid record for the period count as unpaid.
func (d *dashboardRepositoryImpl) UnpaidEmployeeCount(ctx context.Context, period string) (int64, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT COUNT(*)
		FROM employees e
		WHERE e.status = 'active' AND e.deleted_at IS NULL
		AND NOT EXISTS (
			SELECT 1 FROM payment_records p
			WHERE p.employee_id = e.id AND p.period = $1 AND p.paid
		)
	`

	var count int64
	if err := q.QueryRow(ctx, query, period).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unpaid employees for %s: %w", period, err)
	}

	return count, nil
}
